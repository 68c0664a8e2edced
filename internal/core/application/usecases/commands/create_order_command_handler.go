package commands

import (
	"context"
	"errors"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/core/domain/services"
	"photoflow/internal/core/ports"
	"photoflow/internal/pkg/errs"
)

// CreateOrderResult reports the stored order and its priced amount.
type CreateOrderResult struct {
	OrderID kernel.UUID
	Amount  int64
}

// CreateOrderCommandHandler prices and stores a new order. The workspace
// must have an active subscription.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	clock      ports.Clock
	pricer     services.OrderPricer
}

func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		pricer:     services.NewOrderPricer(),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}
	if err := order.AuthorizeCreate(cmd.Actor()); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result, err := createOrder(ctx, uow, h.pricer, cmd, h.clock.Now())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return result, nil
}

// createOrder runs inside the caller's transaction. The recurring order run
// shares it so both paths price and record orders the same way.
func createOrder(
	ctx context.Context,
	uow CreateOrderUoW,
	pricer services.OrderPricer,
	cmd CreateOrderCommand,
	now time.Time,
) (CreateOrderResult, error) {
	sub, err := uow.SubscriptionRepository().GetActiveByWorkspace(ctx, cmd.WorkspaceID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CreateOrderResult{}, subscription.ErrNoActiveSubscription
	}
	if err != nil {
		return CreateOrderResult{}, err
	}

	amount, err := pricer.CalculateOrderAmount(sub, derefCount(cmd.PhotoCount()), derefCount(cmd.VideoCount()))
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.WorkspaceID(), order.Details{
		Location:      cmd.Location(),
		Requirements:  cmd.Requirements(),
		PhotoCount:    cmd.PhotoCount(),
		VideoCount:    cmd.VideoCount(),
		ScheduledDate: cmd.ScheduledDate(),
	}, amount, cmd.Actor(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: o.ID(), Amount: o.Amount()}, nil
}

func derefCount(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
