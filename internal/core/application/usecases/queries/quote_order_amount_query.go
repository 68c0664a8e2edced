package queries

import (
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
	"photoflow/internal/pkg/guard"
)

var ErrQuoteOrderAmountQueryIsNotConstructed = errors.New(
	"QuoteOrderAmountQuery must be created via NewQuoteOrderAmountQuery constructor",
)

// QuoteOrderAmountQuery previews what an order of the given size would cost
// the workspace. Nothing is stored.
type QuoteOrderAmountQuery struct {
	actor       kernel.Actor
	workspaceID kernel.UUID
	photoCount  int
	videoCount  int

	guard guard.ConstructorGuard
}

func NewQuoteOrderAmountQuery(
	actor kernel.Actor,
	workspaceID kernel.UUID,
	photoCount, videoCount int,
) (QuoteOrderAmountQuery, error) {
	var countErrs []error
	if photoCount < 0 {
		countErrs = append(countErrs, errs.NewValueIsOutOfRangeError("photoCount", photoCount, 0, "unbounded"))
	}
	if videoCount < 0 {
		countErrs = append(countErrs, errs.NewValueIsOutOfRangeError("videoCount", videoCount, 0, "unbounded"))
	}
	if err := errors.Join(actor.Validate(), workspaceID.Validate(), errors.Join(countErrs...)); err != nil {
		return QuoteOrderAmountQuery{}, err
	}

	return QuoteOrderAmountQuery{
		actor:       actor,
		workspaceID: workspaceID,
		photoCount:  photoCount,
		videoCount:  videoCount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteOrderAmountQuery) Validate() error {
	return q.guard.Validate(ErrQuoteOrderAmountQueryIsNotConstructed)
}

func (q QuoteOrderAmountQuery) Actor() kernel.Actor      { return q.actor }
func (q QuoteOrderAmountQuery) WorkspaceID() kernel.UUID { return q.workspaceID }
func (q QuoteOrderAmountQuery) PhotoCount() int          { return q.photoCount }
func (q QuoteOrderAmountQuery) VideoCount() int          { return q.videoCount }

// OrderQuote is the itemized price together with the plan it was derived from.
type OrderQuote struct {
	PlanCode     string
	BillingCycle string
	Base         int64
	ExtraPhotos  int
	ExtraVideos  int
	Extras       int64
	Subtotal     int64
	VAT          int64
	Total        int64
}
