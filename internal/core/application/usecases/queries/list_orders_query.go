package queries

import (
	"errors"
	"strings"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders the actor may read, newest first,
// optionally narrowed to one status.
type ListOrdersQuery struct {
	actor  kernel.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status for "all statuses".
func NewListOrdersQuery(actor kernel.Actor, status string) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
	if status = strings.TrimSpace(status); status != "" {
		s, err := order.StatusFromString(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &s
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() kernel.Actor { return q.actor }

// Status is nil when every status is requested.
func (q ListOrdersQuery) Status() *order.Status { return q.status }

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID             kernel.UUID
	WorkspaceID    kernel.UUID
	WorkspaceName  string
	PhotographerID *kernel.UUID
	EditorID       *kernel.UUID
	Status         order.Status
	OrderDate      time.Time
	ScheduledDate  *time.Time
	Location       string
	Amount         int64
}
