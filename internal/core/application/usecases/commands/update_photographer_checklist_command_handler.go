package commands

import (
	"context"

	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/ports"
)

// UpdatePhotographerChecklistCommandHandler applies a checklist step. The
// first contact or scheduling on a NOT_STARTED order starts it; the upload
// hands the order over to editing.
type UpdatePhotographerChecklistCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewUpdatePhotographerChecklistCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
) UpdatePhotographerChecklistCommandHandler {
	return UpdatePhotographerChecklistCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdatePhotographerChecklistCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePhotographerChecklistCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		now := h.clock.Now()
		switch cmd.Step() {
		case StepSchedule:
			return o.ScheduleShoot(cmd.Actor(), cmd.ShootDate(), now)
		case StepUpload:
			return o.UploadPhotos(cmd.Actor(), cmd.DropboxURL(), now)
		default:
			return o.RecordContact(cmd.Actor(), now)
		}
	})
}
