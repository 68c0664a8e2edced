package services

import (
	"errors"

	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/pkg/errs"
)

const (
	// VATPercent is applied on top of the subtotal of every order.
	VATPercent = 25

	maxBillableUnits = 10000
)

// Quote is the itemized price of an order.
type Quote struct {
	Base        int64
	ExtraPhotos int
	ExtraVideos int
	Extras      int64
	Subtotal    int64
	VAT         int64
	Total       int64
}

// OrderPricer computes order amounts from the workspace subscription.
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Quote prices photoCount photos and videoCount videos under sub.
//
// The base is the subscription's custom price or the plan price for its
// billing cycle. Every photo or video above the plan's monthly allowance
// adds the plan's unit price. VATPercent is added and the result is
// rounded half up to a whole currency unit.
//
// Returns subscription.ErrNoActiveSubscription when sub is nil or not active.
func (p OrderPricer) Quote(sub *subscription.Subscription, photoCount, videoCount int) (Quote, error) {
	if !sub.IsActive() {
		return Quote{}, subscription.ErrNoActiveSubscription
	}
	if err := errors.Join(
		validateUnits("photoCount", photoCount),
		validateUnits("videoCount", videoCount),
	); err != nil {
		return Quote{}, err
	}

	plan := sub.Plan()
	extraPhotos := max(0, photoCount-plan.PhotosPerMonth())
	extraVideos := max(0, videoCount-plan.VideosPerMonth())

	q := Quote{
		Base:        sub.BasePrice(),
		ExtraPhotos: extraPhotos,
		ExtraVideos: extraVideos,
		Extras:      int64(extraPhotos)*plan.ExtraPhotoPrice() + int64(extraVideos)*plan.ExtraVideoPrice(),
	}
	q.Subtotal = q.Base + q.Extras
	q.Total = (q.Subtotal*(100+VATPercent) + 50) / 100
	q.VAT = q.Total - q.Subtotal
	return q, nil
}

// CalculateOrderAmount returns only the rounded total of Quote.
func (p OrderPricer) CalculateOrderAmount(sub *subscription.Subscription, photoCount, videoCount int) (int64, error) {
	q, err := p.Quote(sub, photoCount, videoCount)
	if err != nil {
		return 0, err
	}
	return q.Total, nil
}

func validateUnits(name string, n int) error {
	if n < 0 || n > maxBillableUnits {
		return errs.NewValueIsOutOfRangeError(name, n, 0, maxBillableUnits)
	}
	return nil
}
