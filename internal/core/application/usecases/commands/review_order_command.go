package commands

import (
	"errors"
	"strings"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/pkg/guard"
)

var ErrReviewOrderCommandIsNotConstructed = errors.New(
	"ReviewOrderCommand must be created via NewReviewOrderCommand constructor",
)

// ReviewOrderCommand approves the edited set or sends it back to the editor.
// Notes are optional; a default note is recorded when empty.
type ReviewOrderCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	orderID  kernel.UUID
	decision order.ReviewDecision
	notes    string

	guard guard.ConstructorGuard
}

func NewReviewOrderCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	decision order.ReviewDecision,
	notes string,
) (ReviewOrderCommand, error) {
	if err := errors.Join(validateTarget(actor, orderID), decision.Validate()); err != nil {
		return ReviewOrderCommand{}, err
	}

	return ReviewOrderCommand{
		actor:    actor,
		orderID:  orderID,
		decision: decision,
		notes:    strings.TrimSpace(notes),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewOrderCommand) Validate() error {
	return c.guard.Validate(ErrReviewOrderCommandIsNotConstructed)
}

func (c ReviewOrderCommand) Actor() kernel.Actor            { return c.actor }
func (c ReviewOrderCommand) OrderID() kernel.UUID           { return c.orderID }
func (c ReviewOrderCommand) Decision() order.ReviewDecision { return c.decision }
func (c ReviewOrderCommand) Notes() string                  { return c.notes }
