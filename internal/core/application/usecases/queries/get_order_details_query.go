package queries

import (
	"errors"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery reads one order with both checklists and its history.
type GetOrderDetailsQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) Actor() kernel.Actor  { return q.actor }
func (q GetOrderDetailsQuery) OrderID() kernel.UUID { return q.orderID }

type OrderDetails struct {
	OrderSummary

	StartedAt    *time.Time
	CompletedAt  *time.Time
	Requirements string
	PhotoCount   *int
	VideoCount   *int
	CancelReason string
	Version      int

	Checklist       PhotographerChecklistView
	EditorChecklist EditorChecklistView
	History         []HistoryView
}

type PhotographerChecklistView struct {
	ContactedAt *time.Time
	ScheduledAt *time.Time
	DropboxURL  string
	UploadedAt  *time.Time
	Notes       string
}

type EditorChecklistView struct {
	EditingStartedAt *time.Time
	UploadedAt       *time.Time
	CompletedAt      *time.Time
	ReviewURL        string
}

type HistoryView struct {
	Status    order.Status
	ChangedBy kernel.UUID
	Notes     string
	CreatedAt time.Time
	Sequence  int
}
