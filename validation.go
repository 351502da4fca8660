package fundsplit

import "fmt"

// Severity grades a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RemedyKind names a remediation action the caller may apply. It replaces
// an embedded fix-it callback so the engine stays free of side effects:
// the caller interprets the kind and decides whether to act on it.
type RemedyKind string

const (
	// RemedyAddEntryFeeLeg suggests appending the missing founders
	// entry-fee leg for the contribution identified by LegID.
	RemedyAddEntryFeeLeg RemedyKind = "add_entry_fee_leg"
	// RemedyFixWindow suggests correcting a degenerate allocation window.
	RemedyFixWindow RemedyKind = "fix_window"
	// RemedyReduceDraw suggests lowering founder draws that exceed the
	// founders' profit share.
	RemedyReduceDraw RemedyKind = "reduce_draw"
)

// Remedy is a tagged remediation suggestion attached to an Issue.
type Remedy struct {
	Kind  RemedyKind `json:"kind"`
	LegID string     `json:"legId,omitempty"`
}

// Issue is a validation finding from the reconciler, the allocator or the
// waterfall. The engine never fails on degenerate input; it reports issues
// alongside best-effort results and lets the caller decide.
type Issue struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field,omitempty"`
	Message  string   `json:"message"`
	Remedy   *Remedy  `json:"remedy,omitempty"`
}

func (i Issue) String() string {
	if i.Field != "" {
		return fmt.Sprintf("%s: %s: %s", i.Severity, i.Field, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

func errorIssue(field, message string) *Issue {
	return &Issue{Severity: SeverityError, Field: field, Message: message}
}

func warningIssue(field, message string) *Issue {
	return &Issue{Severity: SeverityWarning, Field: field, Message: message}
}

func infoIssue(field, message string) *Issue {
	return &Issue{Severity: SeverityInfo, Field: field, Message: message}
}

func (i *Issue) withRemedy(kind RemedyKind, legID string) *Issue {
	i.Remedy = &Remedy{Kind: kind, LegID: legID}
	return i
}

// HasErrors reports whether any issue in the list is of error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
