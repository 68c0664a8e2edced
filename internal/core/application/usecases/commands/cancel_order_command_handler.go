package commands

import (
	"context"

	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/ports"
)

// CancelOrderCommandHandler ends an active order. Completed and cancelled
// orders are rejected with a state error.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel(cmd.Actor(), cmd.Reason(), h.clock.Now())
	})
}
