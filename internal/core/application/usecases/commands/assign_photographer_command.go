package commands

import (
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/guard"
)

var ErrAssignPhotographerCommandIsNotConstructed = errors.New(
	"AssignPhotographerCommand must be created via NewAssignPhotographerCommand constructor",
)

// AssignPhotographerCommand lets an administrator hand an unclaimed order to
// a photographer.
type AssignPhotographerCommand struct { //nolint:recvcheck //using for validation
	actor          kernel.Actor
	orderID        kernel.UUID
	photographerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignPhotographerCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	photographerID kernel.UUID,
) (AssignPhotographerCommand, error) {
	if err := errors.Join(validateTarget(actor, orderID), photographerID.Validate()); err != nil {
		return AssignPhotographerCommand{}, err
	}

	return AssignPhotographerCommand{
		actor:          actor,
		orderID:        orderID,
		photographerID: photographerID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AssignPhotographerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPhotographerCommandIsNotConstructed)
}

func (c AssignPhotographerCommand) Actor() kernel.Actor         { return c.actor }
func (c AssignPhotographerCommand) OrderID() kernel.UUID        { return c.orderID }
func (c AssignPhotographerCommand) PhotographerID() kernel.UUID { return c.photographerID }
