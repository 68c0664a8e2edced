package order

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
)

// Snapshot is the persisted form of an order handed to RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	WorkspaceID     kernel.UUID
	PhotographerID  *kernel.UUID
	EditorID        *kernel.UUID
	Status          Status
	OrderDate       time.Time
	ScheduledDate   *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	Location        kernel.Location
	Requirements    string
	PhotoCount      *int
	VideoCount      *int
	Amount          int64
	CancelReason    string
	Version         int
	Checklist       PhotographerChecklist
	EditorChecklist EditorChecklist
	History         []HistoryEntry
}

// RestoreOrder rebuilds an order loaded from storage. It checks field
// validity and that the assignments agree with the status, but does not
// replay transitions. All history is treated as already persisted.
func RestoreOrder(s Snapshot) (*Order, error) {
	order := &Order{
		status:          s.Status,
		orderDate:       s.OrderDate,
		scheduledDate:   copyTime(s.ScheduledDate),
		startedAt:       copyTime(s.StartedAt),
		completedAt:     copyTime(s.CompletedAt),
		requirements:    s.Requirements,
		cancelReason:    s.CancelReason,
		checklist:       s.Checklist,
		editorChecklist: s.EditorChecklist,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(s.ID),
		order.setWorkspaceID(s.WorkspaceID),
		order.setLocation(s.Location),
		order.setCount("photoCount", s.PhotoCount, &order.photoCount),
		order.setCount("videoCount", s.VideoCount, &order.videoCount),
		order.setAmount(s.Amount),
		s.Status.Validate(),
		validateAssignments(s.Status, s.PhotographerID, s.EditorID),
	); err != nil {
		return nil, err
	}
	if s.Version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", s.Version, 1, "unbounded")
	}

	order.photographerID = copyUUID(s.PhotographerID)
	order.editorID = copyUUID(s.EditorID)

	history := append([]HistoryEntry(nil), s.History...)
	sort.SliceStable(history, func(i, j int) bool { return history[i].sequence < history[j].sequence })
	order.history = history
	order.MarkPersisted(s.Version)

	return order, nil
}

// validateAssignments enforces the ownership every status implies:
// from NOT_STARTED on the order has a photographer, and once it was reviewed
// it has an editor. Cancelled orders may stop at any point.
func validateAssignments(status Status, photographerID, editorID *kernel.UUID) error {
	needsPhotographer := status == NotStarted || status == InProgress || status == Editing ||
		status == InReview || status == Completed
	needsEditor := status == InReview || status == Completed

	if needsPhotographer && photographerID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"photographerId", fmt.Errorf("%s order must have a photographer", status))
	}
	if needsEditor && editorID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"editorId", fmt.Errorf("%s order must have an editor", status))
	}
	if status == PendingPhotographer && (photographerID != nil || editorID != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", errors.New("PENDING_PHOTOGRAPHER order cannot have assignees"))
	}
	return nil
}
