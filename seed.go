package fundsplit

import "time"

// DefaultWindow is the fund's initial allocation window.
func DefaultWindow() Window {
	return Window{
		Start: NewDate(2025, time.July, 22),
		End:   NewDate(2025, time.September, 6),
	}
}

// DefaultSeedLedger builds the fund's preset ledger: the founders seed
// capital and the initial investor contribution schedule, net of fee.
// Entry-fee legs are not included here; the bootstrap gate restores them
// through the reconciler, which keeps the seed and the invariant in one
// place.
func DefaultSeedLedger() *Ledger {
	ledger := NewLedger(
		NewSeedLeg("founders_seed", USD(5000), NewDate(2025, time.July, 10)),
	)

	type preset struct {
		investor string
		amount   float64
		on       Date
	}
	presets := []preset{
		{"Laura", 5000, NewDate(2025, time.July, 22)},
		{"Laura", 5000, NewDate(2025, time.August, 1)},
		{"Laura", 2500, NewDate(2025, time.August, 15)},
		{"Laura", 2500, NewDate(2025, time.September, 1)},
		{"Damon", 5000, NewDate(2025, time.August, 15)},
	}
	for _, p := range presets {
		id := "contrib_" + p.investor + "_" + p.on.String()
		ledger.Append(NewContributionLeg(id, p.investor, USD(p.amount), p.on))
	}
	return ledger
}
