package ports

import (
	"context"

	"photoflow/internal/core/domain/model/kernel"
)

// ActorDirectory resolves an authenticated user id to the actor the use
// cases act as. Unknown users yield errs.ErrObjectNotFound.
type ActorDirectory interface {
	GetActor(ctx context.Context, userID kernel.UUID) (kernel.Actor, error)
}
