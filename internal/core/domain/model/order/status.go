package order

import (
	"fmt"
	"strings"

	"photoflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING_PHOTOGRAPHER ──┬──> NOT_STARTED ──> IN_PROGRESS ──> EDITING ──> IN_REVIEW ──> COMPLETED
//	                       └─────────────────────────^             ^            │
//	                                                               └────────────┘
//	                                                           (changes requested)
//
// Every non-terminal status may also move to CANCELLED.
// COMPLETED and CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPhotographer is the initial status. The order waits for a
	// photographer to accept it or for an administrator to assign one.
	PendingPhotographer

	// NotStarted means a photographer was assigned but has not yet contacted
	// the client or scheduled the shoot.
	NotStarted

	// InProgress covers contacting, scheduling and shooting.
	InProgress

	// Editing starts when the photographer uploads the raw photos.
	Editing

	// InReview means the editor submitted the edits for the photographer's approval.
	InReview

	// Completed is final.
	Completed

	// Cancelled is final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		PendingPhotographer: "PENDING_PHOTOGRAPHER",
		NotStarted:          "NOT_STARTED",
		InProgress:          "IN_PROGRESS",
		Editing:             "EDITING",
		InReview:            "IN_REVIEW",
		Completed:           "COMPLETED",
		Cancelled:           "CANCELLED",
	}
}

// getTransitions is the fixed transition table. A status missing from the
// map has no outgoing transitions.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses are intentionally absent
	return map[Status][]Status{
		PendingPhotographer: {NotStarted, InProgress, Cancelled},
		NotStarted:          {InProgress, Cancelled},
		InProgress:          {Editing, Cancelled},
		Editing:             {InReview, Cancelled},
		InReview:            {Completed, Editing, Cancelled},
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{PendingPhotographer, NotStarted, InProgress, Editing, InReview, Completed, Cancelled}
}

// StatusFromString parses the wire and storage name of a status, e.g. "IN_REVIEW".
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, which typically come from
// corrupted rows or unchecked casts.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the order can still progress or be cancelled.
func (s Status) IsActive() bool {
	return s.Validate() == nil && s != Completed && s != Cancelled
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the table allows the move and a
// StateIsInvalidError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot move to %s", s.String(), next.String()),
		)
	}
	return next, nil
}
