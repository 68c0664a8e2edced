package commands

import (
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/guard"
)

var ErrSubmitForReviewCommandIsNotConstructed = errors.New(
	"SubmitForReviewCommand must be created via NewSubmitForReviewCommand constructor",
)

type SubmitForReviewCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitForReviewCommand(actor kernel.Actor, orderID kernel.UUID) (SubmitForReviewCommand, error) {
	if err := validateTarget(actor, orderID); err != nil {
		return SubmitForReviewCommand{}, err
	}

	return SubmitForReviewCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitForReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitForReviewCommandIsNotConstructed)
}

func (c SubmitForReviewCommand) Actor() kernel.Actor  { return c.actor }
func (c SubmitForReviewCommand) OrderID() kernel.UUID { return c.orderID }
