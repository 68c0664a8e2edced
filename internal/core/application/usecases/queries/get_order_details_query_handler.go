package queries

import (
	"context"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler returns errs.ErrObjectNotFound for unknown or
// deleted orders and errs.ErrNotAuthorized when the actor may not read it.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

type detailsRow struct {
	summaryRow

	StartedAt        *time.Time
	CompletedAt      *time.Time
	Requirements     string
	PhotoCount       *int
	VideoCount       *int
	CancelReason     string
	Version          int
	ContactedAt      *time.Time
	ScheduledAt      *time.Time
	DropboxURL       string
	PhotosUploadedAt *time.Time
	ChecklistNotes   string
	EditingStartedAt *time.Time
	EditsUploadedAt  *time.Time
	EditsCompletedAt *time.Time
	ReviewURL        string
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	db := h.db.WithContext(ctx)

	var row detailsRow
	result := db.Raw(`
		SELECT `+summaryColumns+`,
			o.started_at, o.completed_at, o.requirements, o.photo_count, o.video_count,
			o.cancel_reason, o.version,
			c.contacted_at, c.scheduled_at,
			COALESCE(c.dropbox_url, '') AS dropbox_url,
			c.uploaded_at AS photos_uploaded_at,
			COALESCE(c.notes, '') AS checklist_notes,
			e.editing_started_at,
			e.uploaded_at AS edits_uploaded_at,
			e.completed_at AS edits_completed_at,
			COALESCE(e.review_url, '') AS review_url
		FROM orders o
		JOIN workspaces w ON w.id = o.workspace_id
		LEFT JOIN order_checklists c ON c.order_id = o.id
		LEFT JOIN editor_checklists e ON e.order_id = o.id
		WHERE o.id = ? AND o.deleted_at IS NULL
	`, query.OrderID().Bytes()).Scan(&row)
	if result.Error != nil {
		return OrderDetails{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	summary, err := row.toSummary()
	if err != nil {
		return OrderDetails{}, err
	}

	if !order.CanView(query.Actor(), order.Visibility{
		WorkspaceID:    summary.WorkspaceID,
		PhotographerID: summary.PhotographerID,
		EditorID:       summary.EditorID,
		Status:         summary.Status,
	}) {
		return OrderDetails{}, errs.NewNotAuthorizedError("view order")
	}

	history, err := h.history(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}

	return OrderDetails{
		OrderSummary: summary,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		Requirements: row.Requirements,
		PhotoCount:   row.PhotoCount,
		VideoCount:   row.VideoCount,
		CancelReason: row.CancelReason,
		Version:      row.Version,
		Checklist: PhotographerChecklistView{
			ContactedAt: row.ContactedAt,
			ScheduledAt: row.ScheduledAt,
			DropboxURL:  row.DropboxURL,
			UploadedAt:  row.PhotosUploadedAt,
			Notes:       row.ChecklistNotes,
		},
		EditorChecklist: EditorChecklistView{
			EditingStartedAt: row.EditingStartedAt,
			UploadedAt:       row.EditsUploadedAt,
			CompletedAt:      row.EditsCompletedAt,
			ReviewURL:        row.ReviewURL,
		},
		History: history,
	}, nil
}

func (h GetOrderDetailsQueryHandler) history(ctx context.Context, orderID kernel.UUID) ([]HistoryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, changed_by, notes, created_at, sequence
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY sequence
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryView, 0)
	for rows.Next() {
		var (
			entry     HistoryView
			status    string
			changedBy uuid.UUID
		)
		if err = rows.Scan(&status, &changedBy, &entry.Notes, &entry.CreatedAt, &entry.Sequence); err != nil {
			return nil, err
		}

		if entry.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		if entry.ChangedBy, err = kernel.UUIDFromBytes(changedBy[:]); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
