package order

import (
	"errors"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
)

// HistoryEntry is one append-only row of an order's status history.
// Entries are ordered by Sequence; CreatedAt never decreases along it.
type HistoryEntry struct {
	id        kernel.UUID
	status    Status
	changedBy kernel.UUID
	notes     string
	createdAt time.Time
	sequence  int
}

// RestoreHistoryEntry rebuilds a history row from storage.
func RestoreHistoryEntry(
	id kernel.UUID,
	status Status,
	changedBy kernel.UUID,
	notes string,
	createdAt time.Time,
	sequence int,
) (HistoryEntry, error) {
	if err := errors.Join(id.Validate(), status.Validate(), changedBy.Validate()); err != nil {
		return HistoryEntry{}, err
	}
	if sequence < 1 {
		return HistoryEntry{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 1, "unbounded")
	}

	return HistoryEntry{
		id:        id,
		status:    status,
		changedBy: changedBy,
		notes:     notes,
		createdAt: createdAt,
		sequence:  sequence,
	}, nil
}

func (h HistoryEntry) ID() kernel.UUID        { return h.id }
func (h HistoryEntry) Status() Status         { return h.status }
func (h HistoryEntry) ChangedBy() kernel.UUID { return h.changedBy }
func (h HistoryEntry) Notes() string          { return h.notes }
func (h HistoryEntry) CreatedAt() time.Time   { return h.createdAt }
func (h HistoryEntry) Sequence() int          { return h.sequence }
