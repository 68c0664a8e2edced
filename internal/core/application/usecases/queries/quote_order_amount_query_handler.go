package queries

import (
	"context"
	"errors"
	"fmt"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/core/domain/services"
	"photoflow/internal/pkg/errs"
)

// SubscriptionReader is the part of ports.SubscriptionRepository a quote needs.
type SubscriptionReader interface {
	GetActiveByWorkspace(ctx context.Context, workspaceID kernel.UUID) (*subscription.Subscription, error)
}

type QuoteOrderAmountQueryHandler struct {
	subscriptions SubscriptionReader
	pricer        services.OrderPricer
}

func NewQuoteOrderAmountQueryHandler(subscriptions SubscriptionReader) QuoteOrderAmountQueryHandler {
	return QuoteOrderAmountQueryHandler{
		subscriptions: subscriptions,
		pricer:        services.NewOrderPricer(),
	}
}

// Handle is open to administrators and business users of the workspace.
func (h QuoteOrderAmountQueryHandler) Handle(ctx context.Context, query QuoteOrderAmountQuery) (OrderQuote, error) {
	if err := query.Validate(); err != nil {
		return OrderQuote{}, err
	}

	actor := query.Actor()
	if !actor.IsAdministrator() && !actor.BelongsTo(query.WorkspaceID()) {
		return OrderQuote{}, errs.NewNotAuthorizedErrorWithCause("quote order",
			fmt.Errorf("role %s cannot price orders of workspace %s", actor.Role(), query.WorkspaceID()))
	}

	sub, err := h.subscriptions.GetActiveByWorkspace(ctx, query.WorkspaceID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return OrderQuote{}, subscription.ErrNoActiveSubscription
	}
	if err != nil {
		return OrderQuote{}, err
	}

	q, err := h.pricer.Quote(sub, query.PhotoCount(), query.VideoCount())
	if err != nil {
		return OrderQuote{}, err
	}

	return OrderQuote{
		PlanCode:     sub.Plan().Code(),
		BillingCycle: sub.Cycle().String(),
		Base:         q.Base,
		ExtraPhotos:  q.ExtraPhotos,
		ExtraVideos:  q.ExtraVideos,
		Extras:       q.Extras,
		Subtotal:     q.Subtotal,
		VAT:          q.VAT,
		Total:        q.Total,
	}, nil
}
