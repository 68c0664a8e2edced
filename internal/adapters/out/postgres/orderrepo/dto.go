package orderrepo

import (
	"errors"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkspaceID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PhotographerID  *uuid.UUID `gorm:"type:uuid;index"`
	EditorID        *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(32);not null"`
	OrderDate       time.Time  `gorm:"not null"`
	ScheduledDate   *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	Location        string `gorm:"type:varchar(500);not null"`
	Requirements    string `gorm:"type:text;not null"`
	PhotoCount      *int
	VideoCount      *int
	Amount          int64              `gorm:"not null"`
	CancelReason    string             `gorm:"type:text;not null"`
	Version         int                `gorm:"not null"`
	DeletedAt       gorm.DeletedAt     `gorm:"index"`
	Checklist       ChecklistDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	EditorChecklist EditorChecklistDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History         []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ChecklistDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContactedAt *time.Time
	ScheduledAt *time.Time
	DropboxURL  string `gorm:"column:dropbox_url;type:text;not null"`
	UploadedAt  *time.Time
	Notes       string `gorm:"type:text;not null"`
}

func (ChecklistDTO) TableName() string {
	return "order_checklists"
}

type EditorChecklistDTO struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EditingStartedAt *time.Time
	UploadedAt       *time.Time
	CompletedAt      *time.Time
	ReviewURL        string `gorm:"column:review_url;type:text;not null"`
}

func (EditorChecklistDTO) TableName() string {
	return "editor_checklists"
}

type StatusHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_history_order_sequence"`
	Status    string    `gorm:"type:varchar(32);not null"`
	ChangedBy uuid.UUID `gorm:"type:uuid;not null"`
	Notes     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	Sequence  int       `gorm:"not null;uniqueIndex:idx_history_order_sequence"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()
	checklist := o.Checklist()
	editor := o.EditorChecklist()

	return OrderDTO{
		ID:             id,
		WorkspaceID:    o.WorkspaceID().Bytes(),
		PhotographerID: rawID(o.Photographer()),
		EditorID:       rawID(o.Editor()),
		Status:         o.Status().String(),
		OrderDate:      o.OrderDate(),
		ScheduledDate:  o.ScheduledDate(),
		StartedAt:      o.StartedAt(),
		CompletedAt:    o.CompletedAt(),
		Location:       o.Location().Address(),
		Requirements:   o.Requirements(),
		PhotoCount:     o.PhotoCount(),
		VideoCount:     o.VideoCount(),
		Amount:         o.Amount(),
		CancelReason:   o.CancelReason(),
		Version:        o.Version(),
		Checklist: ChecklistDTO{
			OrderID:     id,
			ContactedAt: checklist.ContactedAt(),
			ScheduledAt: checklist.ScheduledAt(),
			DropboxURL:  checklist.DropboxURL(),
			UploadedAt:  checklist.UploadedAt(),
			Notes:       checklist.Notes(),
		},
		EditorChecklist: EditorChecklistDTO{
			OrderID:          id,
			EditingStartedAt: editor.EditingStartedAt(),
			UploadedAt:       editor.UploadedAt(),
			CompletedAt:      editor.CompletedAt(),
			ReviewURL:        editor.ReviewURL(),
		},
	}
}

func historyFromDomain(orderID uuid.UUID, entries []order.HistoryEntry) []StatusHistoryDTO {
	dtos := make([]StatusHistoryDTO, 0, len(entries))
	for _, h := range entries {
		dtos = append(dtos, StatusHistoryDTO{
			ID:        h.ID().Bytes(),
			OrderID:   orderID,
			Status:    h.Status().String(),
			ChangedBy: h.ChangedBy().Bytes(),
			Notes:     h.Notes(),
			CreatedAt: h.CreatedAt(),
			Sequence:  h.Sequence(),
		})
	}
	return dtos
}

// updateColumns lists every mutable column so that cleared values are
// written as NULL, which a struct-based Updates would skip.
func updateColumns(dto OrderDTO, nextVersion int) map[string]any {
	return map[string]any{
		"photographer_id": dto.PhotographerID,
		"editor_id":       dto.EditorID,
		"status":          dto.Status,
		"scheduled_date":  dto.ScheduledDate,
		"started_at":      dto.StartedAt,
		"completed_at":    dto.CompletedAt,
		"requirements":    dto.Requirements,
		"amount":          dto.Amount,
		"cancel_reason":   dto.CancelReason,
		"version":         nextVersion,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workspaceID, err := kernel.UUIDFromBytes(dto.WorkspaceID[:])
	if err != nil {
		return nil, err
	}
	photographerID, err := optionalID(dto.PhotographerID)
	if err != nil {
		return nil, err
	}
	editorID, err := optionalID(dto.EditorID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewLocation(dto.Location)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	var historyErrs []error
	for _, h := range dto.History {
		entry, hErr := historyToDomain(h)
		if hErr != nil {
			historyErrs = append(historyErrs, hErr)
			continue
		}
		history = append(history, entry)
	}
	if err = errors.Join(historyErrs...); err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             id,
		WorkspaceID:    workspaceID,
		PhotographerID: photographerID,
		EditorID:       editorID,
		Status:         status,
		OrderDate:      dto.OrderDate,
		ScheduledDate:  dto.ScheduledDate,
		StartedAt:      dto.StartedAt,
		CompletedAt:    dto.CompletedAt,
		Location:       location,
		Requirements:   dto.Requirements,
		PhotoCount:     dto.PhotoCount,
		VideoCount:     dto.VideoCount,
		Amount:         dto.Amount,
		CancelReason:   dto.CancelReason,
		Version:        dto.Version,
		Checklist: order.RestorePhotographerChecklist(
			dto.Checklist.ContactedAt,
			dto.Checklist.ScheduledAt,
			dto.Checklist.DropboxURL,
			dto.Checklist.UploadedAt,
			dto.Checklist.Notes,
		),
		EditorChecklist: order.RestoreEditorChecklist(
			dto.EditorChecklist.EditingStartedAt,
			dto.EditorChecklist.UploadedAt,
			dto.EditorChecklist.CompletedAt,
			dto.EditorChecklist.ReviewURL,
		),
		History: history,
	})
}

func historyToDomain(dto StatusHistoryDTO) (order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}
	changedBy, err := kernel.UUIDFromBytes(dto.ChangedBy[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return order.HistoryEntry{}, err
	}
	return order.RestoreHistoryEntry(id, status, changedBy, dto.Notes, dto.CreatedAt, dto.Sequence)
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent assignee
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
