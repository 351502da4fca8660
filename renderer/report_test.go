package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/scprime/fundsplit"
)

func TestReportMarkdown(t *testing.T) {
	window := fundsplit.NewWindow(
		fundsplit.NewDate(2025, time.July, 22),
		fundsplit.NewDate(2025, time.September, 6),
	)
	report := &Report{
		Window: window,
		Wallet: fundsplit.WalletState{
			WalletSize:       fundsplit.USD(26005),
			UnrealizedProfit: fundsplit.USD(52.30),
			RealizedProfit:   fundsplit.USD(5952.70),
		},
		Results: []fundsplit.CalculatedResult{
			{
				Participant:     fundsplit.Participant{Name: fundsplit.FoundersName, Owner: fundsplit.OwnerFounders},
				StartCapital:    fundsplit.USD(5000),
				BaseProfitShare: fundsplit.USD(1200),
				NetProfit:       fundsplit.USD(1500),
				EndCapital:      fundsplit.USD(6500),
			},
			{
				Participant:        fundsplit.Participant{Name: "Laura", Owner: fundsplit.OwnerInvestor},
				TotalContributions: fundsplit.USD(15000),
				BaseProfitShare:    fundsplit.USD(4752.70),
				NetProfit:          fundsplit.USD(4452.70),
				EndCapital:         fundsplit.USD(19452.70),
			},
		},
		Issues: []fundsplit.Issue{
			{Severity: fundsplit.SeverityWarning, Field: "legs", Message: "contribution c9 has no matching entry-fee leg"},
		},
	}

	got := ReportMarkdown(report)
	for _, want := range []string{
		"Allocation 2025-07-22..2025-09-06",
		"Window of 47 days.",
		"Laura",
		"Founders",
		"Findings",
		"no matching entry-fee leg",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestTrendMarkdown_Empty(t *testing.T) {
	got := TrendMarkdown(nil)
	if !strings.Contains(got, "No closed windows yet.") {
		t.Errorf("empty trend report:\n%s", got)
	}
}

func TestLedgerMarkdown(t *testing.T) {
	ledger := fundsplit.NewLedger(
		fundsplit.NewSeedLeg("s", fundsplit.USD(5000), fundsplit.NewDate(2025, time.July, 10)),
	)
	got := LedgerMarkdown(ledger)
	for _, want := range []string{"Cashflow Ledger", "2025-07-10", "seed"} {
		if !strings.Contains(got, want) {
			t.Errorf("ledger report missing %q:\n%s", want, got)
		}
	}
}
