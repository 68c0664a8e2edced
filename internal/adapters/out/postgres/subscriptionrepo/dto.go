package subscriptionrepo

import (
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/subscription"

	"github.com/google/uuid"
)

type PlanDTO struct {
	Code               string `gorm:"type:varchar(64);primaryKey" yaml:"code"`
	Name               string `gorm:"type:varchar(255);not null" yaml:"name"`
	MonthlyPrice       int64  `gorm:"not null" yaml:"monthly_price"`
	YearlyMonthlyPrice int64  `gorm:"not null" yaml:"yearly_monthly_price"`
	PhotosPerMonth     int    `gorm:"not null" yaml:"photos_per_month"`
	VideosPerMonth     int    `gorm:"not null" yaml:"videos_per_month"`
	ExtraPhotoPrice    int64  `gorm:"not null" yaml:"extra_photo_price"`
	ExtraVideoPrice    int64  `gorm:"not null" yaml:"extra_video_price"`
}

func (PlanDTO) TableName() string {
	return "plans"
}

type SubscriptionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceID  uuid.UUID `gorm:"type:uuid;not null"`
	PlanCode     string    `gorm:"type:varchar(64);not null"`
	Plan         PlanDTO   `gorm:"foreignKey:PlanCode;references:Code"`
	BillingCycle string    `gorm:"type:varchar(16);not null"`
	CustomPrice  *int64
	Status       string    `gorm:"type:varchar(16);not null"`
	StartedAt    time.Time `gorm:"not null"`
}

func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

func planToDomain(dto PlanDTO) (subscription.Plan, error) {
	return subscription.NewPlan(subscription.PlanParams{
		Code:               dto.Code,
		Name:               dto.Name,
		MonthlyPrice:       dto.MonthlyPrice,
		YearlyMonthlyPrice: dto.YearlyMonthlyPrice,
		PhotosPerMonth:     dto.PhotosPerMonth,
		VideosPerMonth:     dto.VideosPerMonth,
		ExtraPhotoPrice:    dto.ExtraPhotoPrice,
		ExtraVideoPrice:    dto.ExtraVideoPrice,
	})
}

func toDomain(dto SubscriptionDTO) (*subscription.Subscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workspaceID, err := kernel.UUIDFromBytes(dto.WorkspaceID[:])
	if err != nil {
		return nil, err
	}
	plan, err := planToDomain(dto.Plan)
	if err != nil {
		return nil, err
	}
	cycle, err := subscription.BillingCycleFromString(dto.BillingCycle)
	if err != nil {
		return nil, err
	}
	status, err := subscription.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return subscription.NewSubscription(id, workspaceID, plan, cycle, dto.CustomPrice, status, dto.StartedAt)
}
