package commands

import (
	"context"

	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/ports"
)

type AssignEditorCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewAssignEditorCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AssignEditorCommandHandler {
	return AssignEditorCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AssignEditorCommandHandler) Handle(ctx context.Context, cmd AssignEditorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AssignEditor(cmd.Actor(), h.clock.Now())
	})
}
