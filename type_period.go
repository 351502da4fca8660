package fundsplit

import (
	"fmt"
	"strings"
	"time"
)

// Period is a standard reporting period used to derive allocation windows.
type Period int

const (
	Weekly Period = iota
	Monthly
	Quarterly
)

func (p Period) String() string {
	switch p {
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name, accepting both noun and adjective forms.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	default:
		return Weekly, fmt.Errorf("unknown period %q", p)
	}
}

// startOf returns the first day of the period containing d.
func (p Period) startOf(d Date) Date {
	switch p {
	case Weekly:
		offset := int(d.Weekday() - time.Monday)
		for offset < 0 {
			offset += 7
		}
		return d.Add(-offset)
	case Monthly:
		return NewDate(d.Year(), d.Month(), 1)
	case Quarterly:
		quarter := (d.Month() - 1) / 3
		return NewDate(d.Year(), time.Month(quarter*3+1), 1)
	default:
		panic("unknown period")
	}
}

// endOf returns the last day of the period containing d.
func (p Period) endOf(d Date) Date {
	switch p {
	case Weekly:
		return p.startOf(d).Add(6)
	case Monthly:
		return NewDate(d.Year(), d.Month()+1, 0)
	case Quarterly:
		quarter := (d.Month() - 1) / 3
		return NewDate(d.Year(), time.Month(quarter*3+4), 0)
	default:
		panic("unknown period")
	}
}

// WindowOf returns the allocation window of the period containing d.
func (p Period) WindowOf(d Date) Window {
	return Window{Start: p.startOf(d), End: p.endOf(d)}
}
