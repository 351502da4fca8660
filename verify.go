package fundsplit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// tolerance for cross-checks over rounded currency sums: ±$0.01.
var centTolerance = decimal.NewFromFloat(0.01)

// Verify cross-checks a finished allocation against its invariants and
// reports violations as issues. It is the belt to the waterfall's braces:
// tests and the report command run it to prove no profit was created or
// destroyed on the way through.
func Verify(ledger *Ledger, constants AllocationConstants, weights *WeightTable, results []CalculatedResult, wallet WalletState) []Issue {
	var issues []Issue

	// Share conservation.
	shareSum := 0.0
	for row := range weights.Rows() {
		shareSum += float64(row.Share)
	}
	if weights.Total.IsPositive() {
		if !Percent(shareSum).Equal(1) {
			issues = append(issues, *errorIssue("shares", fmt.Sprintf(
				"time-weighted shares sum to %.9f, want 1", shareSum)))
		}
	} else if shareSum != 0 {
		issues = append(issues, *errorIssue("shares", fmt.Sprintf(
			"zero dollar-days but shares sum to %.9f", shareSum)))
	}

	// Base split conservation: gross shares re-assemble the realized profit.
	if weights.Total.IsPositive() {
		baseSum := USD(0)
		for _, r := range results {
			baseSum = baseSum.Add(r.BaseProfitShare)
		}
		if diff := baseSum.Sub(wallet.RealizedProfit).Decimal().Abs(); diff.GreaterThan(centTolerance) {
			issues = append(issues, *errorIssue("baseProfitShare", fmt.Sprintf(
				"gross profit shares sum to %s, want %s", baseSum, wallet.RealizedProfit)))
		}
	}

	// Fee adjustments are an internal transfer: they sum to zero, and no
	// investor in loss pays a fee.
	feeSum := USD(0)
	for _, r := range results {
		feeSum = feeSum.Add(r.FeeAdjustment)
		if r.Participant.Owner == OwnerInvestor && !r.BaseProfitShare.IsPositive() && !r.FeeAdjustment.IsZero() {
			issues = append(issues, *errorIssue("feeAdjustment", fmt.Sprintf(
				"management fee charged to %s with non-positive base share", r.Participant)))
		}
	}
	if diff := feeSum.Decimal().Abs(); diff.GreaterThan(centTolerance) {
		issues = append(issues, *errorIssue("feeAdjustment", fmt.Sprintf(
			"fee adjustments sum to %s, want zero", feeSum)))
	}

	// Profit conservation: net profits re-assemble realized profit plus
	// the allocated moonbag, minus draws.
	netSum, moonSum, drawSum := USD(0), USD(0), USD(0)
	for _, r := range results {
		netSum = netSum.Add(r.NetProfit)
		moonSum = moonSum.Add(r.MoonbagShare)
		drawSum = drawSum.Add(r.Draws)
	}
	if weights.Total.IsPositive() {
		want := wallet.RealizedProfit.Add(moonSum).Sub(drawSum)
		if diff := netSum.Sub(want).Decimal().Abs(); diff.GreaterThan(centTolerance) {
			issues = append(issues, *errorIssue("netProfit", fmt.Sprintf(
				"net profits sum to %s, want %s", netSum, want)))
		}
	}

	// The moonbag never exceeds the unrealized pool.
	if wallet.UnrealizedProfit.IsPositive() {
		if moonSum.Sub(wallet.UnrealizedProfit).Decimal().GreaterThan(centTolerance) {
			issues = append(issues, *errorIssue("moonbagShare", fmt.Sprintf(
				"moonbag allocations %s exceed unrealized pool %s", moonSum, wallet.UnrealizedProfit)))
		}
	} else if !moonSum.IsZero() {
		issues = append(issues, *errorIssue("moonbagShare",
			"moonbag allocated with no positive unrealized pool"))
	}

	// Entry-fee invariant still holds on the ledger the results came from.
	issues = append(issues, CheckEntryFees(ledger, constants.EntryFeeRate)...)

	return issues
}
