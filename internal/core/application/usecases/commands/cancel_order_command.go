package commands

import (
	"errors"
	"strings"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
	"photoflow/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(actor kernel.Actor, orderID kernel.UUID, reason string) (CancelOrderCommand, error) {
	reason = strings.TrimSpace(reason)

	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("cancelReason")
	}
	if err := errors.Join(validateTarget(actor, orderID), reasonErr); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		actor:   actor,
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Actor() kernel.Actor  { return c.actor }
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderCommand) Reason() string       { return c.reason }
