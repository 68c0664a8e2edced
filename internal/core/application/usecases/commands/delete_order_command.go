package commands

import (
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actor kernel.Actor, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := validateTarget(actor, orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Actor() kernel.Actor  { return c.actor }
func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }
