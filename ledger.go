package fundsplit

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger is the record of all cashflow legs.
//
// In a Ledger legs are always in chronological order; legs sharing a day
// keep their insertion order, so a reconciled fee leg stays right after
// the contribution that generated it.
type Ledger struct {
	legs []CashflowLeg
}

// NewLedger creates a ledger from the given legs.
func NewLedger(legs ...CashflowLeg) *Ledger {
	l := &Ledger{}
	l.Append(legs...)
	return l
}

// Append adds legs to the ledger, keeping chronological order. Existing
// legs are never mutated or removed.
func (l *Ledger) Append(legs ...CashflowLeg) {
	l.legs = append(l.legs, legs...)
	slices.SortStableFunc(l.legs, func(a, b CashflowLeg) int {
		switch {
		case a.Timestamp.Before(b.Timestamp):
			return -1
		case a.Timestamp.After(b.Timestamp):
			return 1
		default:
			return 0
		}
	})
}

// Len returns the number of legs.
func (l *Ledger) Len() int { return len(l.legs) }

// Legs yields every leg in chronological order.
func (l *Ledger) Legs() iter.Seq[CashflowLeg] {
	return func(yield func(CashflowLeg) bool) {
		for _, leg := range l.legs {
			if !yield(leg) {
				return
			}
		}
	}
}

// All returns a copy of the legs slice, chronological.
func (l *Ledger) All() []CashflowLeg {
	return slices.Clone(l.legs)
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{legs: slices.Clone(l.legs)}
}

// Get returns the leg with the given id, or false.
func (l *Ledger) Get(id string) (CashflowLeg, bool) {
	for _, leg := range l.legs {
		if leg.ID == id {
			return leg, true
		}
	}
	return CashflowLeg{}, false
}

// TotalNetContributions sums all external capital legs (seed, investor
// contributions and their entry fees), the denominator of the wallet
// identity. Derived audit legs recycle profit and are excluded.
func (l *Ledger) TotalNetContributions() Money {
	total := USD(0)
	for _, leg := range l.legs {
		if leg.IsCapital() {
			total = total.Add(leg.Amount)
		}
	}
	return total
}

// Participants returns the distinct participant names, founders first,
// then investors in lexical order.
func (l *Ledger) Participants() []Participant {
	seen := make(map[string]bool)
	var investors []Participant
	var founders []Participant
	for _, leg := range l.legs {
		if seen[leg.ParticipantName] {
			continue
		}
		seen[leg.ParticipantName] = true
		p := Participant{Name: leg.ParticipantName, Owner: leg.Owner}
		if leg.Owner == OwnerFounders {
			founders = append(founders, p)
		} else {
			investors = append(investors, p)
		}
	}
	slices.SortFunc(investors, func(a, b Participant) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return append(founders, investors...)
}

// Validate checks every leg for basic well-formedness and returns issues
// rather than failing: negative amounts and missing names are reported as
// errors, duplicate ids as warnings.
func (l *Ledger) Validate() []Issue {
	var issues []Issue
	ids := make(map[string]bool)
	for _, leg := range l.legs {
		if leg.Amount.IsNegative() {
			issues = append(issues, *errorIssue("amount",
				fmt.Sprintf("leg %s has negative amount %s", leg.ID, leg.Amount)))
		}
		if leg.ParticipantName == "" {
			issues = append(issues, *errorIssue("participantName",
				fmt.Sprintf("leg %s has no participant name", leg.ID)))
		}
		if leg.ID != "" && ids[leg.ID] {
			issues = append(issues, *warningIssue("id",
				fmt.Sprintf("duplicate leg id %s", leg.ID)))
		}
		ids[leg.ID] = true
	}
	return issues
}

// Participant identifies one party to the allocation: the founders as a
// single collective participant, or an individual investor by name.
type Participant struct {
	Name  string `json:"name"`
	Owner Owner  `json:"owner"`
}

func (p Participant) String() string { return p.Name }
