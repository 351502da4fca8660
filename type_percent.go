package fundsplit

import "fmt"

// Percent is a share expressed as a fraction in [0,1].
type Percent float64

// Equal compares two shares with a small tolerance, since they come out of
// a division of dollar-days.
func (p Percent) Equal(q Percent) bool {
	const precision = 1e-9
	diff := float64(p - q)
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p)*100)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p)*100)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
