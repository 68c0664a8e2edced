package commands

import (
	"context"

	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/ports"
)

// SubmitForReviewCommandHandler moves an edited order to IN_REVIEW. The
// edits must have been uploaded first.
type SubmitForReviewCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewSubmitForReviewCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) SubmitForReviewCommandHandler {
	return SubmitForReviewCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h SubmitForReviewCommandHandler) Handle(ctx context.Context, cmd SubmitForReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.SubmitForReview(cmd.Actor(), h.clock.Now())
	})
}
