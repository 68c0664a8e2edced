package commands

import (
	"errors"
	"strings"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
	"photoflow/internal/pkg/guard"
)

var ErrUploadEditsCommandIsNotConstructed = errors.New(
	"UploadEditsCommand must be created via NewUploadEditsCommand constructor",
)

// UploadEditsCommand records the link to the edited set. It changes the
// editor checklist only.
type UploadEditsCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	orderID   kernel.UUID
	reviewURL string

	guard guard.ConstructorGuard
}

func NewUploadEditsCommand(actor kernel.Actor, orderID kernel.UUID, reviewURL string) (UploadEditsCommand, error) {
	reviewURL = strings.TrimSpace(reviewURL)

	var urlErr error
	if reviewURL == "" {
		urlErr = errs.NewValueIsRequiredError("reviewUrl")
	}
	if err := errors.Join(validateTarget(actor, orderID), urlErr); err != nil {
		return UploadEditsCommand{}, err
	}

	return UploadEditsCommand{
		actor:     actor,
		orderID:   orderID,
		reviewURL: reviewURL,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UploadEditsCommand) Validate() error {
	return c.guard.Validate(ErrUploadEditsCommandIsNotConstructed)
}

func (c UploadEditsCommand) Actor() kernel.Actor  { return c.actor }
func (c UploadEditsCommand) OrderID() kernel.UUID { return c.orderID }
func (c UploadEditsCommand) ReviewURL() string    { return c.reviewURL }
