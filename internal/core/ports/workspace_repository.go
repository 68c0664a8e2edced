package ports

import (
	"context"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/workspace"
)

type WorkspaceRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*workspace.Workspace, error)
}
