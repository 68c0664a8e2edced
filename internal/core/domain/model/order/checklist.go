package order

import "time"

// PhotographerChecklist tracks the photographer's progress inside
// NOT_STARTED and IN_PROGRESS. It has no state machine of its own; the
// order's operations set its timestamps.
type PhotographerChecklist struct {
	contactedAt *time.Time
	scheduledAt *time.Time
	dropboxURL  string
	uploadedAt  *time.Time
	notes       string
}

// RestorePhotographerChecklist rebuilds a checklist from storage.
func RestorePhotographerChecklist(
	contactedAt, scheduledAt *time.Time,
	dropboxURL string,
	uploadedAt *time.Time,
	notes string,
) PhotographerChecklist {
	return PhotographerChecklist{
		contactedAt: copyTime(contactedAt),
		scheduledAt: copyTime(scheduledAt),
		dropboxURL:  dropboxURL,
		uploadedAt:  copyTime(uploadedAt),
		notes:       notes,
	}
}

func (c PhotographerChecklist) ContactedAt() *time.Time { return copyTime(c.contactedAt) }
func (c PhotographerChecklist) ScheduledAt() *time.Time { return copyTime(c.scheduledAt) }
func (c PhotographerChecklist) DropboxURL() string      { return c.dropboxURL }
func (c PhotographerChecklist) UploadedAt() *time.Time  { return copyTime(c.uploadedAt) }
func (c PhotographerChecklist) Notes() string           { return c.notes }

// EditorChecklist tracks the editor's progress inside EDITING and IN_REVIEW.
type EditorChecklist struct {
	editingStartedAt *time.Time
	uploadedAt       *time.Time
	completedAt      *time.Time
	reviewURL        string
}

// RestoreEditorChecklist rebuilds a checklist from storage.
func RestoreEditorChecklist(editingStartedAt, uploadedAt, completedAt *time.Time, reviewURL string) EditorChecklist {
	return EditorChecklist{
		editingStartedAt: copyTime(editingStartedAt),
		uploadedAt:       copyTime(uploadedAt),
		completedAt:      copyTime(completedAt),
		reviewURL:        reviewURL,
	}
}

func (c EditorChecklist) EditingStartedAt() *time.Time { return copyTime(c.editingStartedAt) }
func (c EditorChecklist) UploadedAt() *time.Time       { return copyTime(c.uploadedAt) }
func (c EditorChecklist) CompletedAt() *time.Time      { return copyTime(c.completedAt) }
func (c EditorChecklist) ReviewURL() string            { return c.reviewURL }

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}
