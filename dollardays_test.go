package fundsplit

import (
	"testing"
	"time"
)

func TestAllocateDollarDays_Shares(t *testing.T) {
	window := NewWindow(NewDate(2025, time.January, 1), NewDate(2025, time.January, 10))
	ledger := NewLedger(
		NewSeedLeg("seed", USD(1000), NewDate(2025, time.January, 1)),
		NewContributionLeg("c1", "Alice", USD(500), NewDate(2025, time.January, 6)),
	)

	weights, issues := AllocateDollarDays(ledger, window)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}

	// Founders: 1000 over days 1..10 inclusive. Alice: 500 over days 6..10.
	founders := weights.Row(FoundersName)
	if founders.DollarDays.String() != "10000" {
		t.Errorf("founders dollar-days = %s, want 10000", founders.DollarDays)
	}
	alice := weights.Row("Alice")
	if alice.DollarDays.String() != "2500" {
		t.Errorf("Alice dollar-days = %s, want 2500", alice.DollarDays)
	}
	if weights.Total.String() != "12500" {
		t.Errorf("total dollar-days = %s, want 12500", weights.Total)
	}
	if !founders.Share.Equal(0.8) {
		t.Errorf("founders share = %v, want 0.8", founders.Share)
	}
	if !alice.Share.Equal(0.2) {
		t.Errorf("Alice share = %v, want 0.2", alice.Share)
	}
}

func TestAllocateDollarDays_BalanceSteps(t *testing.T) {
	window := NewWindow(NewDate(2025, time.January, 1), NewDate(2025, time.January, 10))
	ledger := NewLedger(
		NewContributionLeg("c1", "Alice", USD(1000), NewDate(2025, time.January, 1)),
		NewContributionLeg("c2", "Alice", USD(1000), NewDate(2025, time.January, 6)),
	)

	weights, _ := AllocateDollarDays(ledger, window)
	// 1000 for days 1..5, then 2000 for days 6..10: 5000 + 10000.
	alice := weights.Row("Alice")
	if alice.DollarDays.String() != "15000" {
		t.Errorf("Alice dollar-days = %s, want 15000", alice.DollarDays)
	}
	if len(alice.Timeline) != 2 {
		t.Fatalf("timeline has %d points, want 2", len(alice.Timeline))
	}
	if !alice.Timeline[1].Balance.Equal(USD(2000)) {
		t.Errorf("running balance = %s, want $2000", alice.Timeline[1].Balance)
	}
}

// Same-day legs merge into one timeline event instead of two zero-length
// intervals.
func TestAllocateDollarDays_SameDayMerge(t *testing.T) {
	window := NewWindow(NewDate(2025, time.January, 1), NewDate(2025, time.January, 10))
	on := NewDate(2025, time.January, 1)
	ledger := NewLedger(
		NewContributionLeg("c1", "Alice", USD(400), on),
		NewContributionLeg("c2", "Alice", USD(600), on),
	)

	weights, _ := AllocateDollarDays(ledger, window)
	alice := weights.Row("Alice")
	if len(alice.Timeline) != 1 {
		t.Fatalf("timeline has %d points, want 1", len(alice.Timeline))
	}
	if alice.DollarDays.String() != "10000" {
		t.Errorf("Alice dollar-days = %s, want 10000", alice.DollarDays)
	}
}

func TestAllocateDollarDays_OutsideWindow(t *testing.T) {
	window := NewWindow(NewDate(2025, time.January, 1), NewDate(2025, time.January, 10))
	before := NewContributionLeg("c1", "Alice", USD(1000), NewDate(2024, time.December, 1))
	after := NewContributionLeg("c2", "Alice", USD(1000), NewDate(2025, time.February, 1))
	audit := auditLeg("m1", OwnerInvestor, "Alice", LegMoonbagInvest, USD(1000), NewDate(2025, time.January, 5))
	ledger := NewLedger(before, after, audit)

	weights, issues := AllocateDollarDays(ledger, window)
	if alice := weights.Row("Alice"); !alice.DollarDays.IsZero() {
		t.Errorf("Alice dollar-days = %s, want 0: out-of-window and non-earning legs must not accrue", alice.DollarDays)
	}
	if len(issues) != 1 || issues[0].Severity != SeverityWarning {
		t.Errorf("issues = %v, want one zero-total warning", issues)
	}
}

func TestAllocateDollarDays_ZeroTotal(t *testing.T) {
	window := NewWindow(NewDate(2025, time.January, 1), NewDate(2025, time.January, 10))
	weights, issues := AllocateDollarDays(NewLedger(), window)
	if !weights.Total.IsZero() {
		t.Errorf("total = %s, want 0", weights.Total)
	}
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1 warning", len(issues))
	}
	for row := range weights.Rows() {
		if !row.Share.Equal(0) {
			t.Errorf("share for %s = %v, want 0", row.Participant, row.Share)
		}
	}
}

// Entry-fee legs accrue dollar-days under founders, independent of the
// contribution that generated them.
func TestAllocateDollarDays_FeeLegsAccrueToFounders(t *testing.T) {
	window := NewWindow(NewDate(2025, time.January, 1), NewDate(2025, time.January, 10))
	ledger := NewLedger(
		NewContributionLeg("c1", "Alice", USD(900), NewDate(2025, time.January, 1)),
	)
	reconciled, _ := ReconcileEntryFees(ledger, 0.10)

	weights, _ := AllocateDollarDays(reconciled, window)
	// fee = round2(900/0.9 × 0.1) = 100, held 10 days.
	founders := weights.Row(FoundersName)
	if founders == nil {
		t.Fatal("no founders row")
	}
	if founders.DollarDays.String() != "1000" {
		t.Errorf("founders dollar-days = %s, want 1000", founders.DollarDays)
	}
}
