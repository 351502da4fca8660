package fundsplit

import (
	"testing"
	"time"
)

func TestExpectedEntryFee(t *testing.T) {
	tests := []struct {
		net  float64
		rate float64
		want string
	}{
		{5000, 0.10, "555.56"},
		{2500, 0.10, "277.78"},
		{1000, 0.10, "111.11"},
		{5000, 0.20, "1250"},
		{0, 0.10, "0"},
	}
	for _, tc := range tests {
		got := ExpectedEntryFee(USD(tc.net), tc.rate)
		if got.Decimal().String() != tc.want {
			t.Errorf("ExpectedEntryFee(%v, %v) = %s, want %s", tc.net, tc.rate, got.Decimal(), tc.want)
		}
	}
}

func TestReconcileEntryFees_AppendsMissing(t *testing.T) {
	on := NewDate(2025, time.July, 22)
	ledger := NewLedger(
		NewContributionLeg("c1", "Laura", USD(5000), on),
	)

	out, issues := ReconcileEntryFees(ledger, 0.10)
	if out.Len() != 2 {
		t.Fatalf("reconciled ledger has %d legs, want 2", out.Len())
	}
	if len(issues) != 1 || issues[0].Severity != SeverityInfo {
		t.Fatalf("issues = %v, want one info", issues)
	}

	fee, ok := out.Get("c1_entry_fee")
	if !ok {
		t.Fatal("missing entry-fee leg c1_entry_fee")
	}
	if fee.Owner != OwnerFounders || fee.ParticipantName != FoundersName {
		t.Errorf("fee leg credited to %s/%s, want founders", fee.Owner, fee.ParticipantName)
	}
	if fee.Type != LegEntryFee {
		t.Errorf("fee leg type = %s, want %s", fee.Type, LegEntryFee)
	}
	if !fee.Amount.Equal(USD(555.56)) {
		t.Errorf("fee amount = %s, want $555.56", fee.Amount)
	}
	if fee.Timestamp != on {
		t.Errorf("fee dated %s, want %s", fee.Timestamp, on)
	}
	if ledger.Len() != 1 {
		t.Errorf("input ledger mutated to %d legs", ledger.Len())
	}
}

func TestReconcileEntryFees_Idempotent(t *testing.T) {
	ledger := NewLedger(
		NewContributionLeg("c1", "Laura", USD(5000), NewDate(2025, time.July, 22)),
		NewContributionLeg("c2", "Damon", USD(2500), NewDate(2025, time.August, 15)),
	)

	once, _ := ReconcileEntryFees(ledger, 0.10)
	twice, issues := ReconcileEntryFees(once, 0.10)
	if twice.Len() != once.Len() {
		t.Errorf("second reconciliation grew the ledger: %d -> %d legs", once.Len(), twice.Len())
	}
	if len(issues) != 0 {
		t.Errorf("second reconciliation reported issues: %v", issues)
	}
}

// Two identical contributions on one day need two distinct fee legs; one
// existing fee leg must not satisfy both.
func TestReconcileEntryFees_SameDayDuplicates(t *testing.T) {
	on := NewDate(2025, time.August, 1)
	ledger := NewLedger(
		NewContributionLeg("c1", "Laura", USD(5000), on),
		NewContributionLeg("c2", "Laura", USD(5000), on),
	)
	ledger.Append(newEntryFeeLeg(NewContributionLeg("c1", "Laura", USD(5000), on), USD(555.56)))

	out, _ := ReconcileEntryFees(ledger, 0.10)
	if out.Len() != 4 {
		t.Fatalf("reconciled ledger has %d legs, want 4", out.Len())
	}
	fees := 0
	for leg := range out.Legs() {
		if leg.Type == LegEntryFee {
			fees++
		}
	}
	if fees != 2 {
		t.Errorf("got %d fee legs, want 2", fees)
	}
}

func TestCheckEntryFees_Remedy(t *testing.T) {
	ledger := NewLedger(
		NewContributionLeg("c1", "Laura", USD(5000), NewDate(2025, time.July, 22)),
	)

	issues := CheckEntryFees(ledger, 0.10)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(issues), issues)
	}
	issue := issues[0]
	if issue.Severity != SeverityWarning {
		t.Errorf("severity = %s, want warning", issue.Severity)
	}
	if issue.Remedy == nil || issue.Remedy.Kind != RemedyAddEntryFeeLeg || issue.Remedy.LegID != "c1" {
		t.Errorf("remedy = %+v, want AddEntryFeeLeg for c1", issue.Remedy)
	}

	fixed, _ := ReconcileEntryFees(ledger, 0.10)
	if after := CheckEntryFees(fixed, 0.10); len(after) != 0 {
		t.Errorf("issues after reconciliation: %v", after)
	}
}
