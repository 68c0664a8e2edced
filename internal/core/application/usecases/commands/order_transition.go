package commands

import (
	"context"
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
)

// runOrderTransition loads the order, applies change and writes it back in
// one transaction. A failing change leaves the stored order untouched.
func runOrderTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	change func(o *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = change(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func validateTarget(actor kernel.Actor, orderID kernel.UUID) error {
	return errors.Join(actor.Validate(), orderID.Validate())
}
