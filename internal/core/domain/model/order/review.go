package order

import (
	"fmt"
	"strings"

	"photoflow/internal/pkg/errs"
)

// ReviewDecision is the photographer's verdict on an edited order.
type ReviewDecision int

const (
	ReviewUnknown ReviewDecision = iota
	ReviewApprove
	ReviewRequestChanges
)

// ReviewDecisionFromString parses "approve" and "request_changes".
func ReviewDecisionFromString(s string) (ReviewDecision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approve":
		return ReviewApprove, nil
	case "request_changes":
		return ReviewRequestChanges, nil
	default:
		return ReviewUnknown, errs.NewValueIsInvalidErrorWithCause(
			"decision", fmt.Errorf("%q is not one of approve, request_changes", s))
	}
}

func (d ReviewDecision) Validate() error {
	if d != ReviewApprove && d != ReviewRequestChanges {
		return errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%d is not a valid decision", d))
	}
	return nil
}

func (d ReviewDecision) String() string {
	switch d {
	case ReviewApprove:
		return "approve"
	case ReviewRequestChanges:
		return "request_changes"
	case ReviewUnknown:
		return "unknown"
	}
	return "unknown"
}
