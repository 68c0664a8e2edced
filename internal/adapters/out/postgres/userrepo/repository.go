// Package userrepo resolves authenticated users to domain actors.
package userrepo

import (
	"context"
	"errors"
	"fmt"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email       string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role        string     `gorm:"type:varchar(32);not null"`
	WorkspaceID *uuid.UUID `gorm:"type:uuid"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormActorDirectory reads role and workspace from the users table. Nothing
// about the actor is taken from the access token except the user id.
type GormActorDirectory struct {
	db *gorm.DB
}

func NewGormActorDirectory(db *gorm.DB) *GormActorDirectory {
	return &GormActorDirectory{db: db}
}

func (d *GormActorDirectory) GetActor(ctx context.Context, userID kernel.UUID) (kernel.Actor, error) {
	if err := userID.Validate(); err != nil {
		return kernel.Actor{}, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Actor{}, errs.NewObjectNotFoundError("user", userID.String())
		}
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("user %s: %w", userID, err)
	}

	var workspaceID *kernel.UUID
	if dto.WorkspaceID != nil {
		id, err := kernel.UUIDFromBytes(dto.WorkspaceID[:])
		if err != nil {
			return kernel.Actor{}, err
		}
		workspaceID = &id
	}

	return kernel.NewActor(userID, role, workspaceID)
}
