package fundsplit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CalculatedResult is one participant's line of the allocation report.
// Results are always derived fresh from the ledger, the wallet state and
// the constants; nothing here is persisted incrementally.
type CalculatedResult struct {
	Participant          Participant     `json:"participant"`
	StartCapital         Money           `json:"startCapital"`
	TotalContributions   Money           `json:"totalContributions"`
	EndCapital           Money           `json:"endCapital"`
	DollarDays           decimal.Decimal `json:"dollarDays"`
	TimeWeightedSharePct Percent         `json:"timeWeightedSharePct"`
	BaseProfitShare      Money           `json:"baseProfitShare"`
	FeeAdjustment        Money           `json:"feeAdjustment"`
	MoonbagShare         Money           `json:"moonbagShare"`
	Draws                Money           `json:"draws"`
	NetProfit            Money           `json:"netProfit"`
}

// Distribute runs the fee waterfall: realized profit is split pro-rata by
// time-weighted share, the management fee moves from positive investor
// profit to founders, the retained unrealized pool is split by the moonbag
// override, and founder draws come off the top of the founders' net.
//
// Degenerate inputs (zero shares, zero profit, inverted window) never
// fail: each divide-by-zero short-circuits to a zero contribution, errors
// are reported as issues, and best-effort results are always returned so
// the caller decides whether to block or warn.
func Distribute(weights *WeightTable, wallet WalletState, constants AllocationConstants, ledger *Ledger) ([]CalculatedResult, []Issue) {
	var issues []Issue

	if err := constants.Validate(); err != nil {
		issues = append(issues, *errorIssue("constants", err.Error()))
		constants = DefaultConstants()
	}
	if issue := weights.Window.Check(); issue != nil {
		issues = append(issues, *issue)
	}
	if ledger.TotalNetContributions().IsNegative() {
		issues = append(issues, *errorIssue("ledger", "total capital is negative after reconciliation"))
	}

	results := make([]CalculatedResult, 0, len(weights.order))
	index := make(map[string]*CalculatedResult, len(weights.order))
	for row := range weights.Rows() {
		results = append(results, CalculatedResult{
			Participant:          row.Participant,
			StartCapital:         USD(0),
			TotalContributions:   USD(0),
			DollarDays:           row.DollarDays,
			TimeWeightedSharePct: row.Share,
			BaseProfitShare:      USD(0),
			FeeAdjustment:        USD(0),
			MoonbagShare:         USD(0),
			Draws:                USD(0),
			NetProfit:            USD(0),
		})
		index[row.Participant.Name] = &results[len(results)-1]
	}

	creditCapital(ledger, weights.Window, constants, index)

	// Base profit split: losses are shared in the same proportion as
	// gains, no special-casing.
	realized := wallet.RealizedProfit
	for i := range results {
		results[i].BaseProfitShare = realized.MulRate(float64(results[i].TimeWeightedSharePct))
	}

	founders := foundersRow(results)
	issues = append(issues, applyMgmtFee(results, founders, constants)...)
	issues = append(issues, applyMoonbag(results, founders, weights, wallet, constants)...)
	issues = append(issues, applyDraws(founders, constants)...)

	for i := range results {
		r := &results[i]
		r.NetProfit = r.BaseProfitShare.Add(r.FeeAdjustment).Add(r.MoonbagShare).Sub(r.Draws)
		r.EndCapital = r.StartCapital.Add(r.TotalContributions).Add(r.NetProfit)
	}
	if founders != nil && constants.ApplyDraws && founders.NetProfit.IsNegative() {
		issue := warningIssue("draws", fmt.Sprintf(
			"founder draws of %s drive founders net profit to %s", founders.Draws, founders.NetProfit))
		issues = append(issues, *issue.withRemedy(RemedyReduceDraw, ""))
	}

	return results, issues
}

// creditCapital attributes each leg's amount to a participant's start
// capital (dated on or before the window start) or in-window contributions.
// When the entry fee does not reduce investor credit, fee legs are credited
// back to the investor whose contribution generated them, making that
// investor's credited capital gross.
func creditCapital(ledger *Ledger, window Window, constants AllocationConstants, index map[string]*CalculatedResult) {
	for leg := range ledger.Legs() {
		name := leg.ParticipantName
		if !constants.FeeReducesInvestorCredit {
			if parentID := leg.feeParentID(); parentID != "" {
				if parent, ok := ledger.Get(parentID); ok {
					name = parent.ParticipantName
				}
			}
		}
		r, ok := index[name]
		if !ok {
			continue
		}
		amount := leg.Amount
		if leg.Type == LegDraw {
			// draws are money leaving the fund
			amount = amount.Neg()
		}
		switch {
		case !leg.Timestamp.After(window.Start):
			r.StartCapital = r.StartCapital.Add(amount)
		case !leg.Timestamp.After(window.End):
			r.TotalContributions = r.TotalContributions.Add(amount)
		}
	}
}

// foundersRow returns the collective founders result line, or nil.
func foundersRow(results []CalculatedResult) *CalculatedResult {
	for i := range results {
		if results[i].Participant.Owner == OwnerFounders {
			return &results[i]
		}
	}
	return nil
}

// applyMgmtFee charges the management fee on the positive aggregate
// investor base profit only, never on losses, and moves it to founders.
// The charge is apportioned pro-rata across investors with a positive
// base share; investors in loss pay nothing.
func applyMgmtFee(results []CalculatedResult, founders *CalculatedResult, constants AllocationConstants) []Issue {
	aggregate := USD(0)
	positive := USD(0)
	for i := range results {
		if results[i].Participant.Owner != OwnerInvestor {
			continue
		}
		aggregate = aggregate.Add(results[i].BaseProfitShare)
		if results[i].BaseProfitShare.IsPositive() {
			positive = positive.Add(results[i].BaseProfitShare)
		}
	}
	if !aggregate.IsPositive() || positive.IsZero() {
		return nil
	}

	feeTotal := aggregate.MulRate(constants.MgmtFeeRate)
	for i := range results {
		r := &results[i]
		if r.Participant.Owner != OwnerInvestor || !r.BaseProfitShare.IsPositive() {
			continue
		}
		ratio, _ := r.BaseProfitShare.Decimal().Div(positive.Decimal()).Float64()
		r.FeeAdjustment = r.FeeAdjustment.Sub(feeTotal.MulRate(ratio))
	}
	if founders != nil {
		founders.FeeAdjustment = founders.FeeAdjustment.Add(feeTotal)
	}
	return nil
}

// applyMoonbag splits the retained unrealized pool: the founder override
// percentage goes to founders, the remainder to investors pro-rata by
// investor dollar-days. The pool is kept distinct from realized-profit
// distribution and only a positive unrealized balance forms a pool.
func applyMoonbag(results []CalculatedResult, founders *CalculatedResult, weights *WeightTable, wallet WalletState, constants AllocationConstants) []Issue {
	if !wallet.UnrealizedProfit.IsPositive() {
		return nil
	}
	pool := wallet.UnrealizedProfit
	foundersShare := pool.MulRate(constants.MoonbagFounderPct)
	if founders != nil {
		founders.MoonbagShare = founders.MoonbagShare.Add(foundersShare)
	}

	remainder := pool.Sub(foundersShare)
	investorDD := weights.InvestorDollarDays()
	if investorDD.IsZero() {
		if remainder.IsPositive() {
			return []Issue{*warningIssue("moonbag", fmt.Sprintf(
				"investor moonbag of %s is unallocated: no investor dollar-days in window", remainder))}
		}
		return nil
	}
	for i := range results {
		r := &results[i]
		if r.Participant.Owner != OwnerInvestor {
			continue
		}
		ratio, _ := r.DollarDays.Div(investorDD).Float64()
		r.MoonbagShare = r.MoonbagShare.Add(remainder.MulRate(ratio))
	}
	return nil
}

// applyDraws subtracts the fixed founder draws from the founders line.
// Draws may exceed the founders' share by business rule; the overdraw
// warning is raised by Distribute once net profit is known.
func applyDraws(founders *CalculatedResult, constants AllocationConstants) []Issue {
	if !constants.ApplyDraws || founders == nil {
		return nil
	}
	count := constants.FounderCount
	if count < 1 {
		count = 1
	}
	founders.Draws = USD(constants.DrawPerFounder * float64(count))
	return nil
}
