package kernel

import (
	"errors"

	"photoflow/internal/pkg/errs"
	"photoflow/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrActorIsNotAuthenticated is returned when an operation runs without a
// resolved actor.
var ErrActorIsNotAuthenticated = errs.NewNotAuthorizedErrorWithCause(
	"authenticate", errors.New("actor is not authenticated"))

var systemActorID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

// Actor is the authenticated caller of a use case.
// The zero value represents an anonymous caller and fails Validate.
type Actor struct {
	id          UUID
	role        Role
	workspaceID *UUID
	guard       guard.ConstructorGuard
}

// NewActor builds an actor. Business users must belong to a workspace.
func NewActor(id UUID, role Role, workspaceID *UUID) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	if role == RoleBusiness && workspaceID == nil {
		return Actor{}, errs.NewValueIsRequiredError("workspaceId")
	}

	var ws *UUID
	if workspaceID != nil {
		if err := workspaceID.Validate(); err != nil {
			return Actor{}, err
		}
		copied := *workspaceID
		ws = &copied
	}

	return Actor{
		id:          id,
		role:        role,
		workspaceID: ws,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// SystemActor is the identity recorded in history rows written by scheduled jobs.
func SystemActor() Actor {
	return Actor{
		id:    UUID{id: systemActorID},
		role:  RoleSystem,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate returns ErrActorIsNotAuthenticated for the zero value.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotAuthenticated)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// WorkspaceID is set for business users and nil otherwise.
func (a Actor) WorkspaceID() *UUID {
	return a.workspaceID
}

func (a Actor) Is(role Role) bool {
	return a.Validate() == nil && a.role == role
}

func (a Actor) IsAdministrator() bool {
	return a.Is(RoleAdministrator)
}

// BelongsTo reports whether a business actor is a member of the workspace.
func (a Actor) BelongsTo(workspaceID UUID) bool {
	return a.Is(RoleBusiness) && a.workspaceID != nil && a.workspaceID.IsEqual(workspaceID)
}
