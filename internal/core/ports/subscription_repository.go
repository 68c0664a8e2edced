package ports

import (
	"context"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/subscription"
)

type SubscriptionRepository interface {
	// GetActiveByWorkspace returns errs.ErrObjectNotFound when the workspace
	// has no active subscription.
	GetActiveByWorkspace(ctx context.Context, workspaceID kernel.UUID) (*subscription.Subscription, error)

	// LockActiveByWorkspace is GetActiveByWorkspace holding a row lock until
	// the surrounding transaction ends.
	LockActiveByWorkspace(ctx context.Context, workspaceID kernel.UUID) (*subscription.Subscription, error)

	ListActive(ctx context.Context) ([]*subscription.Subscription, error)
}
