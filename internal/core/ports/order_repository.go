package ports

import (
	"context"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
)

type OrderRepository interface {
	// Add stores a new order with its checklists and history.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order only if its stored version still matches
	// aggregate.Version(). A mismatch returns errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete soft-deletes the order and removes its checklists and history.
	Delete(ctx context.Context, id kernel.UUID) error

	// LatestOrderDate returns the newest orderDate of the workspace, or nil
	// when it has no orders.
	LatestOrderDate(ctx context.Context, workspaceID kernel.UUID) (*time.Time, error)
}
