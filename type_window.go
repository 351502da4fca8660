package fundsplit

import (
	"fmt"
	"iter"
)

// Window bounds the dollar-days calculation. Both boundaries are calendar
// days; Start and End are inclusive for membership, and a balance held on
// the last day still earns one day of credit.
type Window struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewWindow creates a window. Boundaries are kept as given: an inverted
// window is reported by Check, not silently repaired.
func NewWindow(start, end Date) Window {
	return Window{Start: start, End: end}
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.Start, w.End)
}

// Contains reports whether the date falls within the window (boundaries included).
func (w Window) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// TotalDays returns the number of calendar days the window spans, counting
// both boundary days. Zero or negative spans return 0.
func (w Window) TotalDays() int {
	n := w.Start.DaysUntil(w.End) + 1
	if n < 0 {
		return 0
	}
	return n
}

// Days yields each date within the window, inclusive.
func (w Window) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := w.Start; !d.After(w.End); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Check returns a validation issue when the window is degenerate, or nil.
func (w Window) Check() *Issue {
	if w.Start.IsZero() || w.End.IsZero() {
		return errorIssue("window", "allocation window is not set").withRemedy(RemedyFixWindow, "")
	}
	if !w.Start.Before(w.End) {
		i := errorIssue("window", fmt.Sprintf("window start %s is not before end %s", w.Start, w.End))
		return i.withRemedy(RemedyFixWindow, "")
	}
	return nil
}
