package commands

import (
	"context"

	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/ports"
)

type UploadEditsCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewUploadEditsCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) UploadEditsCommandHandler {
	return UploadEditsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UploadEditsCommandHandler) Handle(ctx context.Context, cmd UploadEditsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.UploadEdits(cmd.Actor(), cmd.ReviewURL(), h.clock.Now())
	})
}
