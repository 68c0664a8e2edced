package commands

import (
	"context"

	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/ports"
)

type ReviewOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewReviewOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ReviewOrderCommandHandler {
	return ReviewOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle completes the order on approval or returns it to EDITING.
func (h ReviewOrderCommandHandler) Handle(ctx context.Context, cmd ReviewOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Review(cmd.Actor(), cmd.Decision(), cmd.Notes(), h.clock.Now())
	})
}
