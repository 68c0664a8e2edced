package workspacerepo

import (
	"context"
	"errors"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/workspace"
	"photoflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Address string    `gorm:"type:varchar(500);not null"`
}

func (WorkspaceDTO) TableName() string {
	return "workspaces"
}

type GormWorkspaceRepository struct {
	db *gorm.DB
}

func NewGormWorkspaceRepository(db *gorm.DB) *GormWorkspaceRepository {
	return &GormWorkspaceRepository{db: db}
}

func (r *GormWorkspaceRepository) Get(ctx context.Context, id kernel.UUID) (*workspace.Workspace, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkspaceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workspace", id.String())
		}
		return nil, err
	}

	address, err := kernel.NewLocation(dto.Address)
	if err != nil {
		return nil, err
	}
	return workspace.NewWorkspace(id, dto.Name, address)
}
