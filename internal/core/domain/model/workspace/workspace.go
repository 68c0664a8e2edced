// Package workspace holds the business tenant that owns orders and subscriptions.
package workspace

import (
	"errors"
	"strings"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
)

var ErrWorkspaceIsNotConstructed = errors.New("Workspace must be created via NewWorkspace constructor")

// Workspace is reference data for the order logic. Its address is the default
// shoot location of generated monthly orders.
type Workspace struct {
	id      kernel.UUID
	name    string
	address kernel.Location

	isConstructed bool
}

func NewWorkspace(id kernel.UUID, name string, address kernel.Location) (*Workspace, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), nameErr, address.Validate()); err != nil {
		return nil, err
	}

	return &Workspace{id: id, name: name, address: address, isConstructed: true}, nil
}

func (w *Workspace) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkspaceIsNotConstructed
	}
	return nil
}

func (w *Workspace) ID() kernel.UUID          { return w.id }
func (w *Workspace) Name() string             { return w.name }
func (w *Workspace) Address() kernel.Location { return w.address }
