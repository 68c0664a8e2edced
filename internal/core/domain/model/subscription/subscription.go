package subscription

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
)

var (
	ErrSubscriptionIsNotConstructed = errors.New("Subscription must be created via NewSubscription constructor")

	// ErrNoActiveSubscription is returned when pricing or order creation runs
	// for a workspace without an active subscription.
	ErrNoActiveSubscription = errs.NewStateIsInvalidErrorWithCause(
		"subscription", errors.New("no active subscription"))
)

// BillingCycle selects which plan price applies.
type BillingCycle int

const (
	CycleUnknown BillingCycle = iota
	CycleMonthly
	CycleYearly
)

func BillingCycleFromString(s string) (BillingCycle, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MONTHLY":
		return CycleMonthly, nil
	case "YEARLY":
		return CycleYearly, nil
	default:
		return CycleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"billingCycle", fmt.Errorf("%q is not one of MONTHLY, YEARLY", s))
	}
}

func (c BillingCycle) String() string {
	switch c {
	case CycleMonthly:
		return "MONTHLY"
	case CycleYearly:
		return "YEARLY"
	case CycleUnknown:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

// Status of a subscription. Only Active subscriptions are billed.
type Status int

const (
	StatusUnknown Status = iota
	StatusActive
	StatusPaused
	StatusCancelled
)

func StatusFromString(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACTIVE":
		return StatusActive, nil
	case "PAUSED":
		return StatusPaused, nil
	case "CANCELLED":
		return StatusCancelled, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid subscription status", s))
	}
}

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusPaused:
		return "PAUSED"
	case StatusCancelled:
		return "CANCELLED"
	case StatusUnknown:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

// Subscription binds a workspace to a plan.
type Subscription struct {
	id          kernel.UUID
	workspaceID kernel.UUID
	plan        Plan
	cycle       BillingCycle
	customPrice *int64
	status      Status
	startedAt   time.Time

	isConstructed bool
}

// NewSubscription builds a subscription. customPrice, when set, replaces the
// plan's cycle price and must not be negative.
func NewSubscription(
	id kernel.UUID,
	workspaceID kernel.UUID,
	plan Plan,
	cycle BillingCycle,
	customPrice *int64,
	status Status,
	startedAt time.Time,
) (*Subscription, error) {
	if err := errors.Join(
		id.Validate(),
		workspaceID.Validate(),
		plan.Validate(),
		validateCycle(cycle),
		validateStatus(status),
		validateCustomPrice(customPrice),
	); err != nil {
		return nil, err
	}

	var price *int64
	if customPrice != nil {
		v := *customPrice
		price = &v
	}

	return &Subscription{
		id:            id,
		workspaceID:   workspaceID,
		plan:          plan,
		cycle:         cycle,
		customPrice:   price,
		status:        status,
		startedAt:     startedAt,
		isConstructed: true,
	}, nil
}

func (s *Subscription) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}
	return nil
}

func (s *Subscription) ID() kernel.UUID          { return s.id }
func (s *Subscription) WorkspaceID() kernel.UUID { return s.workspaceID }
func (s *Subscription) Plan() Plan               { return s.plan }
func (s *Subscription) Cycle() BillingCycle      { return s.cycle }
func (s *Subscription) Status() Status           { return s.status }
func (s *Subscription) StartedAt() time.Time     { return s.startedAt }

func (s *Subscription) CustomPrice() *int64 {
	if s.customPrice == nil {
		return nil
	}
	v := *s.customPrice
	return &v
}

func (s *Subscription) IsActive() bool {
	return s.Validate() == nil && s.status == StatusActive
}

// BasePrice is the administrator override when present, otherwise the plan
// price for the billing cycle.
func (s *Subscription) BasePrice() int64 {
	if s.customPrice != nil {
		return *s.customPrice
	}
	if s.cycle == CycleYearly {
		return s.plan.yearlyMonthlyPrice
	}
	return s.plan.monthlyPrice
}

func validateCycle(c BillingCycle) error {
	if c != CycleMonthly && c != CycleYearly {
		return errs.NewValueIsInvalidErrorWithCause("billingCycle", fmt.Errorf("%d is not a valid cycle", c))
	}
	return nil
}

func validateStatus(s Status) error {
	if s < StatusActive || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func validateCustomPrice(price *int64) error {
	if price != nil && *price < 0 {
		return errs.NewValueIsOutOfRangeError("customPrice", *price, 0, "unbounded")
	}
	return nil
}
