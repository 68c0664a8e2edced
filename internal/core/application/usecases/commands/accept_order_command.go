package commands

import (
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a photographer claiming an unassigned order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(actor kernel.Actor, orderID kernel.UUID) (AcceptOrderCommand, error) {
	if err := validateTarget(actor, orderID); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) Actor() kernel.Actor  { return c.actor }
func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }
