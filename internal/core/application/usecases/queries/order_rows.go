package queries

import (
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

const summaryColumns = `o.id, o.workspace_id, w.name AS workspace_name, o.photographer_id, o.editor_id,
	o.status, o.order_date, o.scheduled_date, o.location, o.amount`

type summaryRow struct {
	ID             uuid.UUID
	WorkspaceID    uuid.UUID
	WorkspaceName  string
	PhotographerID *uuid.UUID
	EditorID       *uuid.UUID
	Status         string
	OrderDate      time.Time
	ScheduledDate  *time.Time
	Location       string
	Amount         int64
}

func (r summaryRow) toSummary() (OrderSummary, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	workspaceID, err := kernel.UUIDFromBytes(r.WorkspaceID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	photographerID, err := optionalUUID(r.PhotographerID)
	if err != nil {
		return OrderSummary{}, err
	}
	editorID, err := optionalUUID(r.EditorID)
	if err != nil {
		return OrderSummary{}, err
	}
	status, err := order.StatusFromString(r.Status)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:             id,
		WorkspaceID:    workspaceID,
		WorkspaceName:  r.WorkspaceName,
		PhotographerID: photographerID,
		EditorID:       editorID,
		Status:         status,
		OrderDate:      r.OrderDate,
		ScheduledDate:  r.ScheduledDate,
		Location:       r.Location,
		Amount:         r.Amount,
	}, nil
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // unassigned
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
