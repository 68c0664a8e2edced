// Package commands contains the operations that change orders. Every command
// is a value built by its constructor and run by a handler that opens one
// unit of work per call: load, apply the domain operation, write, commit.
package commands

import (
	"context"

	"photoflow/internal/core/ports"
)

// Each handler depends on the narrowest unit of work it needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	WorkspaceRepoFactory interface {
		WorkspaceRepository() ports.WorkspaceRepository
	}

	// OrderUoW serves commands that only touch an existing order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW prices a new order against the workspace subscription.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		SubscriptionRepoFactory
	}

	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// UoW exposes every repository. Used by the recurring order run.
	UoW interface {
		TxManager
		OrderRepoFactory
		SubscriptionRepoFactory
		WorkspaceRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
