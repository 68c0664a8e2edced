package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"photoflow/internal/adapters/out/postgres/pgerr"
	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository stores orders together with their checklists and
// status history.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order at version 1 with both checklists and every
// history row.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	dto.History = historyFromDomain(dto.ID, aggregate.PendingHistory())

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order", aggregate.ID().String())
	}

	aggregate.MarkPersisted(dto.Version)
	return nil
}

// Update writes the order only while the stored version equals
// aggregate.Version(), then bumps it. Checklists are upserted and only
// history rows appended since the last load are inserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)
	nextVersion := dto.Version + 1

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(updateColumns(dto, nextVersion))
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order", aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return r.conflictOrMissing(ctx, aggregate)
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Checklist).Error; err != nil {
		return fmt.Errorf("save photographer checklist: %w", err)
	}
	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.EditorChecklist).Error; err != nil {
		return fmt.Errorf("save editor checklist: %w", err)
	}

	if pending := historyFromDomain(dto.ID, aggregate.PendingHistory()); len(pending) > 0 {
		if err := db.Create(&pending).Error; err != nil {
			return pgerr.Translate(err, "order status history", aggregate.ID().String())
		}
	}

	aggregate.MarkPersisted(nextVersion)
	return nil
}

func (r *GormOrderRepository) conflictOrMissing(ctx context.Context, aggregate *order.Order) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidErrorWithCause("order",
		fmt.Errorf("order %s changed since version %d", aggregate.ID(), aggregate.Version()))
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Checklist").
		Preload("EditorChecklist").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete soft-deletes the order row and removes its checklists and history.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	for _, child := range []any{&StatusHistoryDTO{}, &ChecklistDTO{}, &EditorChecklistDTO{}} {
		if err := db.Where("order_id = ?", id.Bytes()).Delete(child).Error; err != nil {
			return err
		}
	}

	return nil
}

// LatestOrderDate ignores deleted orders.
func (r *GormOrderRepository) LatestOrderDate(ctx context.Context, workspaceID kernel.UUID) (*time.Time, error) {
	if err := workspaceID.Validate(); err != nil {
		return nil, err
	}

	var latest sql.NullTime
	row := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("MAX(order_date)").
		Where("workspace_id = ?", workspaceID.Bytes()).
		Row()
	if err := row.Scan(&latest); err != nil {
		return nil, err
	}
	if !latest.Valid {
		return nil, nil //nolint:nilnil // workspace has no orders
	}

	return &latest.Time, nil
}
