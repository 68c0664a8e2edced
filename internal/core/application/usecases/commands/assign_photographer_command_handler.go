package commands

import (
	"context"

	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/ports"
)

type AssignPhotographerCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewAssignPhotographerCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
) AssignPhotographerCommandHandler {
	return AssignPhotographerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle moves the order to NOT_STARTED.
func (h AssignPhotographerCommandHandler) Handle(ctx context.Context, cmd AssignPhotographerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AssignPhotographer(cmd.Actor(), cmd.PhotographerID(), h.clock.Now())
	})
}
