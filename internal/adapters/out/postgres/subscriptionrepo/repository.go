package subscriptionrepo

import (
	"context"
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/subscription"
	"photoflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSubscriptionRepository reads subscriptions joined with their plan.
type GormSubscriptionRepository struct {
	db *gorm.DB
}

func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

func (r *GormSubscriptionRepository) GetActiveByWorkspace(
	ctx context.Context,
	workspaceID kernel.UUID,
) (*subscription.Subscription, error) {
	return r.activeByWorkspace(r.db.WithContext(ctx), workspaceID)
}

// LockActiveByWorkspace selects the subscription row FOR UPDATE. Concurrent
// callers for the same workspace queue until the holder commits or rolls
// back. Outside a transaction the lock is released immediately.
func (r *GormSubscriptionRepository) LockActiveByWorkspace(
	ctx context.Context,
	workspaceID kernel.UUID,
) (*subscription.Subscription, error) {
	return r.activeByWorkspace(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), workspaceID)
}

func (r *GormSubscriptionRepository) activeByWorkspace(
	db *gorm.DB,
	workspaceID kernel.UUID,
) (*subscription.Subscription, error) {
	if err := workspaceID.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriptionDTO
	err := db.
		Preload("Plan").
		Where("workspace_id = ? AND status = ?", workspaceID.Bytes(), subscription.StatusActive.String()).
		Order("started_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscription", workspaceID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListActive returns active subscriptions oldest first.
func (r *GormSubscriptionRepository) ListActive(ctx context.Context) ([]*subscription.Subscription, error) {
	var dtos []SubscriptionDTO
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("status = ?", subscription.StatusActive.String()).
		Order("started_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	subs := make([]*subscription.Subscription, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	return subs, nil
}
