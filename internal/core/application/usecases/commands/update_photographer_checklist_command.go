package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
	"photoflow/internal/pkg/guard"
)

var ErrUpdatePhotographerChecklistCommandIsNotConstructed = errors.New(
	"UpdatePhotographerChecklistCommand must be created via NewUpdatePhotographerChecklistCommand constructor",
)

// ChecklistStep names the photographer checklist item being completed.
type ChecklistStep string

const (
	StepContact  ChecklistStep = "contact"
	StepSchedule ChecklistStep = "schedule"
	StepUpload   ChecklistStep = "upload"
)

// UpdatePhotographerChecklistCommand completes one step of the photographer
// checklist. StepSchedule needs a shoot date and StepUpload a link to the
// raw files.
type UpdatePhotographerChecklistCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	orderID    kernel.UUID
	step       ChecklistStep
	shootDate  time.Time
	dropboxURL string

	guard guard.ConstructorGuard
}

func NewUpdatePhotographerChecklistCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	step ChecklistStep,
	shootDate time.Time,
	dropboxURL string,
) (UpdatePhotographerChecklistCommand, error) {
	cmd := UpdatePhotographerChecklistCommand{
		actor:      actor,
		orderID:    orderID,
		step:       step,
		shootDate:  shootDate,
		dropboxURL: strings.TrimSpace(dropboxURL),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(validateTarget(actor, orderID), cmd.validateStep()); err != nil {
		return UpdatePhotographerChecklistCommand{}, err
	}

	return cmd, nil
}

func (c UpdatePhotographerChecklistCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePhotographerChecklistCommandIsNotConstructed)
}

func (c UpdatePhotographerChecklistCommand) Actor() kernel.Actor  { return c.actor }
func (c UpdatePhotographerChecklistCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdatePhotographerChecklistCommand) Step() ChecklistStep  { return c.step }
func (c UpdatePhotographerChecklistCommand) ShootDate() time.Time { return c.shootDate }
func (c UpdatePhotographerChecklistCommand) DropboxURL() string   { return c.dropboxURL }

func (c UpdatePhotographerChecklistCommand) validateStep() error {
	switch c.step {
	case StepContact:
		return nil
	case StepSchedule:
		if c.shootDate.IsZero() {
			return errs.NewValueIsRequiredError("scheduledDate")
		}
		return nil
	case StepUpload:
		if c.dropboxURL == "" {
			return errs.NewValueIsRequiredError("dropboxUrl")
		}
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("unknown checklist step %q", c.step))
	}
}
