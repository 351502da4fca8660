package fundsplit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GrossUp recovers the pre-fee contribution amount from the net credited
// amount: gross = net / (1 - rate).
func GrossUp(net Money, rate float64) Money {
	one := decimal.NewFromInt(1)
	gross := net.Decimal().Div(one.Sub(decimal.NewFromFloat(rate)))
	return M(gross, net.Currency())
}

// ExpectedEntryFee computes the founders entry fee owed for a contribution
// leg carrying the net credited amount: round2(gross × rate). A net $5000
// contribution at a 10% entry fee owes $555.56.
func ExpectedEntryFee(net Money, rate float64) Money {
	return GrossUp(net, rate).MulRate(rate).Round2()
}

// CheckEntryFees verifies the entry-fee invariant without touching the
// ledger: every investor contribution must have exactly one founders
// entry-fee leg on the same calendar day for the rounded expected amount.
// Missing legs are reported as warnings carrying an AddEntryFeeLeg remedy.
func CheckEntryFees(l *Ledger, entryFeeRate float64) []Issue {
	var issues []Issue
	for _, missing := range missingEntryFees(l, entryFeeRate) {
		issue := warningIssue("legs", fmt.Sprintf(
			"contribution %s by %s on %s has no matching entry-fee leg of %s",
			missing.parent.ID, missing.parent.ParticipantName, missing.parent.Timestamp, missing.fee))
		issues = append(issues, *issue.withRemedy(RemedyAddEntryFeeLeg, missing.parent.ID))
	}
	return issues
}

// ReconcileEntryFees restores the entry-fee invariant by appending the
// missing founders entry-fee legs. It never mutates or removes existing
// legs and is idempotent: each existing fee leg satisfies at most one
// contribution, so running it twice yields the same ledger. The input
// ledger is left untouched.
func ReconcileEntryFees(l *Ledger, entryFeeRate float64) (*Ledger, []Issue) {
	out := l.Clone()
	var issues []Issue
	for _, missing := range missingEntryFees(l, entryFeeRate) {
		out.Append(newEntryFeeLeg(missing.parent, missing.fee))
		issues = append(issues, *infoIssue("legs", fmt.Sprintf(
			"appended entry-fee leg of %s for contribution %s on %s",
			missing.fee, missing.parent.ID, missing.parent.Timestamp)))
	}
	return out, issues
}

type missingFee struct {
	parent CashflowLeg
	fee    Money
}

// missingEntryFees pairs each investor contribution with an unconsumed
// entry-fee leg of the expected rounded amount on the same day. Two equal
// contributions on one day need two distinct fee legs, so every fee leg
// satisfies at most one contribution.
func missingEntryFees(l *Ledger, entryFeeRate float64) []missingFee {
	type feeKey struct {
		day    Date
		amount string
	}
	available := make(map[feeKey]int)
	for leg := range l.Legs() {
		if leg.Owner == OwnerFounders && leg.Type == LegEntryFee {
			k := feeKey{leg.Timestamp, leg.Amount.Round2().Decimal().String()}
			available[k]++
		}
	}

	var missing []missingFee
	for leg := range l.Legs() {
		if leg.Owner != OwnerInvestor || leg.Type != LegContribution {
			continue
		}
		fee := ExpectedEntryFee(leg.Amount, entryFeeRate)
		k := feeKey{leg.Timestamp, fee.Decimal().String()}
		if available[k] > 0 {
			available[k]--
			continue
		}
		missing = append(missing, missingFee{parent: leg, fee: fee})
	}
	return missing
}
