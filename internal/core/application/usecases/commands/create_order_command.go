package commands

import (
	"errors"
	"strings"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
	"photoflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderParams holds the booking details of a new order.
type CreateOrderParams struct {
	OrderID       kernel.UUID
	WorkspaceID   kernel.UUID
	Location      string
	Requirements  string
	PhotoCount    *int
	VideoCount    *int
	ScheduledDate *time.Time
}

// CreateOrderCommand books a new order for a workspace. The amount is not
// part of the command; it is priced from the workspace subscription.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	orderID     kernel.UUID
	workspaceID kernel.UUID
	location    kernel.Location
	details     CreateOrderParams

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(actor kernel.Actor, p CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		p.OrderID.Validate(),
		p.WorkspaceID.Validate(),
		cmd.setLocation(p.Location),
		nonNegative("photoCount", p.PhotoCount),
		nonNegative("videoCount", p.VideoCount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = p.OrderID
	cmd.workspaceID = p.WorkspaceID
	cmd.details = p
	cmd.details.Requirements = strings.TrimSpace(p.Requirements)
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor       { return c.actor }
func (c CreateOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c CreateOrderCommand) WorkspaceID() kernel.UUID  { return c.workspaceID }
func (c CreateOrderCommand) Location() kernel.Location { return c.location }
func (c CreateOrderCommand) Requirements() string      { return c.details.Requirements }
func (c CreateOrderCommand) PhotoCount() *int          { return c.details.PhotoCount }
func (c CreateOrderCommand) VideoCount() *int          { return c.details.VideoCount }
func (c CreateOrderCommand) ScheduledDate() *time.Time { return c.details.ScheduledDate }

func (c *CreateOrderCommand) setLocation(address string) error {
	location, err := kernel.NewLocation(address)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}

func nonNegative(name string, v *int) error {
	if v != nil && *v < 0 {
		return errs.NewValueIsOutOfRangeError(name, *v, 0, "unbounded")
	}
	return nil
}
