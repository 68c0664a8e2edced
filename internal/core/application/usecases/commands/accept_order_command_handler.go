package commands

import (
	"context"

	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/ports"
)

// AcceptOrderCommandHandler assigns the calling photographer and starts the
// order. Of two photographers accepting at once, the second gets a version
// conflict.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Accept(cmd.Actor(), h.clock.Now())
	})
}
