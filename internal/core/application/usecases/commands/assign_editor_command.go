package commands

import (
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/guard"
)

var ErrAssignEditorCommandIsNotConstructed = errors.New(
	"AssignEditorCommand must be created via NewAssignEditorCommand constructor",
)

// AssignEditorCommand is an editor taking an order that is waiting in
// EDITING without an editor.
type AssignEditorCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignEditorCommand(actor kernel.Actor, orderID kernel.UUID) (AssignEditorCommand, error) {
	if err := validateTarget(actor, orderID); err != nil {
		return AssignEditorCommand{}, err
	}

	return AssignEditorCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignEditorCommand) Validate() error {
	return c.guard.Validate(ErrAssignEditorCommandIsNotConstructed)
}

func (c AssignEditorCommand) Actor() kernel.Actor  { return c.actor }
func (c AssignEditorCommand) OrderID() kernel.UUID { return c.orderID }
