package fundsplit

import (
	"iter"

	"github.com/shopspring/decimal"
)

// CapitalPoint is one step of a participant's capital timeline inside the
// allocation window.
type CapitalPoint struct {
	Date    Date  `json:"date"`
	Balance Money `json:"balance"`
}

// ParticipantWeight carries a participant's time-weighted credit over the
// window: accumulated dollar-days, the resulting share, and the capital
// timeline the dollar-days were integrated from.
type ParticipantWeight struct {
	Participant Participant
	DollarDays  decimal.Decimal
	Share       Percent
	Timeline    []CapitalPoint
}

// WeightTable is the result of the dollar-days allocation, one row per
// participant, in founders-first order.
type WeightTable struct {
	Window Window
	Total  decimal.Decimal
	rows   map[string]*ParticipantWeight
	order  []Participant
}

// Rows yields each participant weight in deterministic order.
func (t *WeightTable) Rows() iter.Seq[*ParticipantWeight] {
	return func(yield func(*ParticipantWeight) bool) {
		for _, p := range t.order {
			if !yield(t.rows[p.Name]) {
				return
			}
		}
	}
}

// Row returns the weight row for a participant name, or nil.
func (t *WeightTable) Row(name string) *ParticipantWeight {
	return t.rows[name]
}

// InvestorDollarDays returns the dollar-days accumulated by investor-class
// participants only, the denominator of the investor moonbag split.
func (t *WeightTable) InvestorDollarDays() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t.order {
		if p.Owner == OwnerInvestor {
			total = total.Add(t.rows[p.Name].DollarDays)
		}
	}
	return total
}

// AllocateDollarDays computes each participant's time-weighted capital
// credit over the window.
//
// Only legs flagged as earning and dated within the window accrue credit.
// For each participant the legs are walked chronologically with a running
// balance; each event contributes balance × days-until-next-event, where
// the window end is an exclusive upper bound for day counting so that a
// balance held on the last day still earns one day. Entry-fee legs accrue
// under founders: they are real capital events independent of the investor
// contribution that generated them.
//
// When total dollar-days is zero every share is zero and a warning is
// reported instead of dividing by zero.
func AllocateDollarDays(l *Ledger, window Window) (*WeightTable, []Issue) {
	table := &WeightTable{
		Window: window,
		Total:  decimal.Zero,
		rows:   make(map[string]*ParticipantWeight),
		order:  l.Participants(),
	}

	for _, p := range table.order {
		table.rows[p.Name] = &ParticipantWeight{Participant: p, DollarDays: decimal.Zero}
	}

	for leg := range l.Legs() {
		if !leg.EarnsDollarDays || !window.Contains(leg.Timestamp) {
			continue
		}
		row := table.rows[leg.ParticipantName]
		balance := USD(0)
		if n := len(row.Timeline); n > 0 {
			last := &row.Timeline[n-1]
			if last.Date == leg.Timestamp {
				// merge same-day legs into a single event
				last.Balance = last.Balance.Add(leg.Amount)
				continue
			}
			balance = last.Balance
		}
		row.Timeline = append(row.Timeline, CapitalPoint{
			Date:    leg.Timestamp,
			Balance: balance.Add(leg.Amount),
		})
	}

	for _, row := range table.rows {
		for i, point := range row.Timeline {
			days := 0
			if i+1 < len(row.Timeline) {
				days = point.Date.DaysUntil(row.Timeline[i+1].Date)
			} else {
				days = point.Date.DaysUntil(window.End) + 1
			}
			if days <= 0 {
				continue
			}
			row.DollarDays = row.DollarDays.Add(point.Balance.MulDays(days).Decimal())
		}
		table.Total = table.Total.Add(row.DollarDays)
	}

	var issues []Issue
	if table.Total.IsZero() {
		issues = append(issues, *warningIssue("dollarDays",
			"total dollar-days is zero for window "+window.String()+"; all shares are zero"))
		return table, issues
	}

	for _, row := range table.rows {
		share, _ := row.DollarDays.Div(table.Total).Float64()
		row.Share = Percent(share)
	}
	return table, issues
}
