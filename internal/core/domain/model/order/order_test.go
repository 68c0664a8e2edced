package order_test

import (
	"testing"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/core/domain/model/order"
	"photoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func actor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	var ws *kernel.UUID
	if role == kernel.RoleBusiness {
		id := kernel.NewUUID()
		ws = &id
	}
	a, err := kernel.NewActor(kernel.NewUUID(), role, ws)
	require.NoError(t, err)
	return a
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	loc, err := kernel.NewLocation("4 Quay Street")
	require.NoError(t, err)
	photos := 120
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Details{
		Location:     loc,
		Requirements: "Team headshots",
		PhotoCount:   &photos,
	}, 15000, actor(t, kernel.RoleAdministrator), baseTime)
	require.NoError(t, err)
	return o
}

func inProgressOrder(t *testing.T) (*order.Order, kernel.Actor) {
	t.Helper()
	o := newPendingOrder(t)
	photographer := actor(t, kernel.RolePhotographer)
	require.NoError(t, o.Accept(photographer, baseTime.Add(time.Hour)))
	return o, photographer
}

func editingOrder(t *testing.T) (*order.Order, kernel.Actor, kernel.Actor) {
	t.Helper()
	o, photographer := inProgressOrder(t)
	require.NoError(t, o.UploadPhotos(photographer, "https://dropbox.com/s/raw", baseTime.Add(2*time.Hour)))
	editor := actor(t, kernel.RoleEditor)
	require.NoError(t, o.AssignEditor(editor, baseTime.Add(3*time.Hour)))
	return o, photographer, editor
}

func inReviewOrder(t *testing.T) (*order.Order, kernel.Actor, kernel.Actor) {
	t.Helper()
	o, photographer, editor := editingOrder(t)
	require.NoError(t, o.UploadEdits(editor, "https://review.example.com/set/1", baseTime.Add(4*time.Hour)))
	require.NoError(t, o.SubmitForReview(editor, baseTime.Add(5*time.Hour)))
	return o, photographer, editor
}

func lastHistory(o *order.Order) order.HistoryEntry {
	h := o.History()
	return h[len(h)-1]
}

func TestNewOrder(t *testing.T) {
	loc, _ := kernel.NewLocation("4 Quay Street")
	admin := actor(t, kernel.RoleAdministrator)

	t.Run("should create pending order with creation history", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.PendingPhotographer, o.Status())
		assert.Nil(t, o.Photographer())
		assert.Nil(t, o.Editor())
		assert.Equal(t, int64(15000), o.Amount())
		assert.Equal(t, baseTime, o.OrderDate())
		assert.Equal(t, 120, *o.PhotoCount())
		assert.Nil(t, o.Checklist().ContactedAt())
		assert.Nil(t, o.EditorChecklist().EditingStartedAt())
		require.Len(t, o.History(), 1)
		assert.Equal(t, order.PendingPhotographer, o.History()[0].Status())
		assert.Len(t, o.PendingHistory(), 1)
	})

	t.Run("should allow the system actor", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Details{Location: loc}, 0,
			kernel.SystemActor(), baseTime)

		require.NoError(t, err)
	})

	t.Run("should reject photographers", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Details{Location: loc}, 0,
			actor(t, kernel.RolePhotographer), baseTime)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Nil(t, o)
	})

	t.Run("should reject anonymous callers", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.Details{Location: loc}, 0,
			kernel.Actor{}, baseTime)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		negative := -3
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, order.Details{VideoCount: &negative}, -1,
			admin, baseTime)

		require.Error(t, err)
		fields := errs.Fields(err)
		assert.Contains(t, fields, "workspaceId")
		assert.Contains(t, fields, "location")
		assert.Contains(t, fields, "videoCount")
		assert.Contains(t, fields, "amount")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Accept(t *testing.T) {
	t.Run("should assign photographer and start the order", func(t *testing.T) {
		o := newPendingOrder(t)
		photographer := actor(t, kernel.RolePhotographer)
		now := baseTime.Add(time.Hour)

		require.NoError(t, o.Accept(photographer, now))

		assert.Equal(t, order.InProgress, o.Status())
		assert.True(t, o.Photographer().IsEqual(photographer.ID()))
		assert.Equal(t, now, *o.StartedAt())
		require.Len(t, o.History(), 2)
		assert.Equal(t, order.InProgress, lastHistory(o).Status())
		assert.True(t, lastHistory(o).ChangedBy().IsEqual(photographer.ID()))
	})

	t.Run("should reject a second photographer", func(t *testing.T) {
		o, first := inProgressOrder(t)
		second := actor(t, kernel.RolePhotographer)

		err := o.Accept(second, baseTime.Add(2*time.Hour))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.True(t, o.Photographer().IsEqual(first.ID()))
		assert.Len(t, o.History(), 2)
	})

	t.Run("should reject photographer assigned by an administrator", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AssignPhotographer(actor(t, kernel.RoleAdministrator), kernel.NewUUID(), baseTime))

		err := o.Accept(actor(t, kernel.RolePhotographer), baseTime)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})

	t.Run("should reject non photographers", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleEditor, kernel.RoleAdministrator, kernel.RoleBusiness} {
			o := newPendingOrder(t)

			err := o.Accept(actor(t, role), baseTime)

			require.ErrorIs(t, err, errs.ErrNotAuthorized, role.String())
			assert.Equal(t, order.PendingPhotographer, o.Status())
		}
	})
}

func TestOrder_AssignPhotographer(t *testing.T) {
	t.Run("should move to not started", func(t *testing.T) {
		o := newPendingOrder(t)
		photographerID := kernel.NewUUID()

		require.NoError(t, o.AssignPhotographer(actor(t, kernel.RoleAdministrator), photographerID, baseTime))

		assert.Equal(t, order.NotStarted, o.Status())
		assert.True(t, o.Photographer().IsEqual(photographerID))
		assert.Nil(t, o.StartedAt())
		assert.Len(t, o.History(), 2)
	})

	t.Run("should require administrator", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.AssignPhotographer(actor(t, kernel.RolePhotographer), kernel.NewUUID(), baseTime)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestOrder_PhotographerChecklist(t *testing.T) {
	t.Run("contact on not started order starts it", func(t *testing.T) {
		o := newPendingOrder(t)
		photographer := actor(t, kernel.RolePhotographer)
		require.NoError(t, o.AssignPhotographer(actor(t, kernel.RoleAdministrator), photographer.ID(), baseTime))
		now := baseTime.Add(time.Hour)

		require.NoError(t, o.RecordContact(photographer, now))

		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, now, *o.Checklist().ContactedAt())
		assert.Equal(t, now, *o.StartedAt())
		assert.Len(t, o.History(), 3)
	})

	t.Run("checklist updates while in progress append no history", func(t *testing.T) {
		o, photographer := inProgressOrder(t)
		shoot := baseTime.AddDate(0, 0, 7)

		require.NoError(t, o.RecordContact(photographer, baseTime.Add(2*time.Hour)))
		require.NoError(t, o.ScheduleShoot(photographer, shoot, baseTime.Add(3*time.Hour)))

		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, shoot, *o.ScheduledDate())
		assert.NotNil(t, o.Checklist().ScheduledAt())
		assert.Len(t, o.History(), 2)
	})

	t.Run("rescheduling overwrites the shoot date", func(t *testing.T) {
		o, photographer := inProgressOrder(t)
		require.NoError(t, o.ScheduleShoot(photographer, baseTime.AddDate(0, 0, 7), baseTime))
		later := baseTime.AddDate(0, 0, 14)

		require.NoError(t, o.ScheduleShoot(photographer, later, baseTime.Add(time.Hour)))

		assert.Equal(t, later, *o.ScheduledDate())
	})

	t.Run("schedule requires a date", func(t *testing.T) {
		o, photographer := inProgressOrder(t)

		err := o.ScheduleShoot(photographer, time.Time{}, baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("another photographer cannot touch the checklist", func(t *testing.T) {
		o, _ := inProgressOrder(t)

		err := o.RecordContact(actor(t, kernel.RolePhotographer), baseTime)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Nil(t, o.Checklist().ContactedAt())
	})

	t.Run("administrator may act for the photographer", func(t *testing.T) {
		o, _ := inProgressOrder(t)

		require.NoError(t, o.RecordContact(actor(t, kernel.RoleAdministrator), baseTime))
	})
}

func TestOrder_UploadPhotos(t *testing.T) {
	t.Run("should move to editing", func(t *testing.T) {
		o, photographer := inProgressOrder(t)
		now := baseTime.Add(2 * time.Hour)

		require.NoError(t, o.UploadPhotos(photographer, " https://dropbox.com/s/abc ", now))

		assert.Equal(t, order.Editing, o.Status())
		assert.Equal(t, "https://dropbox.com/s/abc", o.Checklist().DropboxURL())
		assert.Equal(t, now, *o.Checklist().UploadedAt())
		assert.Equal(t, now, *o.EditorChecklist().EditingStartedAt())
		assert.Equal(t, order.Editing, lastHistory(o).Status())
	})

	t.Run("should reject malformed links", func(t *testing.T) {
		for _, link := range []string{"", "dropbox.com/s/abc", "ftp://dropbox.com/x", "https://"} {
			o, photographer := inProgressOrder(t)

			err := o.UploadPhotos(photographer, link, baseTime)

			require.Error(t, err, link)
			assert.True(t, errs.IsValidation(err), link)
			assert.Contains(t, errs.Fields(err), "dropboxUrl")
			assert.Equal(t, order.InProgress, o.Status())
		}
	})

	t.Run("should reject upload before the shoot started", func(t *testing.T) {
		o := newPendingOrder(t)
		photographer := actor(t, kernel.RolePhotographer)
		require.NoError(t, o.AssignPhotographer(actor(t, kernel.RoleAdministrator), photographer.ID(), baseTime))

		err := o.UploadPhotos(photographer, "https://dropbox.com/s/abc", baseTime)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})
}

func TestOrder_AssignEditor(t *testing.T) {
	t.Run("should assign editor and keep editing status", func(t *testing.T) {
		o, photographer := inProgressOrder(t)
		require.NoError(t, o.UploadPhotos(photographer, "https://dropbox.com/s/abc", baseTime))
		editor := actor(t, kernel.RoleEditor)
		before := len(o.History())

		require.NoError(t, o.AssignEditor(editor, baseTime.Add(time.Hour)))

		assert.Equal(t, order.Editing, o.Status())
		assert.True(t, o.Editor().IsEqual(editor.ID()))
		assert.Len(t, o.History(), before+1)
		assert.Equal(t, order.Editing, lastHistory(o).Status())
	})

	t.Run("should reject a second editor and keep the first", func(t *testing.T) {
		o, _, first := editingOrder(t)
		before := len(o.History())

		err := o.AssignEditor(actor(t, kernel.RoleEditor), baseTime.Add(10*time.Hour))

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.True(t, o.Editor().IsEqual(first.ID()))
		assert.Len(t, o.History(), before)
	})

	t.Run("should reject photographers", func(t *testing.T) {
		o, photographer := inProgressOrder(t)
		require.NoError(t, o.UploadPhotos(photographer, "https://dropbox.com/s/abc", baseTime))

		err := o.AssignEditor(photographer, baseTime)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestOrder_SubmitForReview(t *testing.T) {
	t.Run("should require uploaded edits", func(t *testing.T) {
		o, _, editor := editingOrder(t)

		err := o.SubmitForReview(editor, baseTime)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Equal(t, order.Editing, o.Status())
	})

	t.Run("should move to in review", func(t *testing.T) {
		o, _, editor := inReviewOrder(t)

		assert.Equal(t, order.InReview, o.Status())
		assert.Equal(t, "https://review.example.com/set/1", o.EditorChecklist().ReviewURL())
		assert.NotNil(t, o.EditorChecklist().CompletedAt())
		assert.True(t, lastHistory(o).ChangedBy().IsEqual(editor.ID()))
	})

	t.Run("should reject other editors", func(t *testing.T) {
		o, _, _ := editingOrder(t)

		err := o.UploadEdits(actor(t, kernel.RoleEditor), "https://review.example.com/x", baseTime)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("administrator cannot submit an order without editor", func(t *testing.T) {
		o, photographer := inProgressOrder(t)
		require.NoError(t, o.UploadPhotos(photographer, "https://dropbox.com/s/abc", baseTime))

		err := o.SubmitForReview(actor(t, kernel.RoleAdministrator), baseTime)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})
}

func TestOrder_Review(t *testing.T) {
	t.Run("approval completes the order", func(t *testing.T) {
		o, photographer, _ := inReviewOrder(t)
		now := baseTime.Add(6 * time.Hour)

		require.NoError(t, o.Review(photographer, order.ReviewApprove, "", now))

		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, now, *o.CompletedAt())
		assert.Equal(t, "Order approved", lastHistory(o).Notes())
	})

	t.Run("change request returns to editing", func(t *testing.T) {
		o, photographer, editor := inReviewOrder(t)

		require.NoError(t, o.Review(photographer, order.ReviewRequestChanges, "Brighten the lobby shots", baseTime))

		assert.Equal(t, order.Editing, o.Status())
		assert.Nil(t, o.EditorChecklist().CompletedAt())
		assert.NotNil(t, o.EditorChecklist().UploadedAt())
		assert.True(t, o.Editor().IsEqual(editor.ID()))
		assert.Equal(t, "Brighten the lobby shots", lastHistory(o).Notes())
	})

	t.Run("editor cannot review", func(t *testing.T) {
		o, _, editor := inReviewOrder(t)

		err := o.Review(editor, order.ReviewApprove, "", baseTime)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.InReview, o.Status())
	})

	t.Run("unknown decision is a validation error", func(t *testing.T) {
		o, photographer, _ := inReviewOrder(t)

		err := o.Review(photographer, order.ReviewUnknown, "", baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestReviewDecisionFromString(t *testing.T) {
	d, err := order.ReviewDecisionFromString("approve")
	require.NoError(t, err)
	assert.Equal(t, order.ReviewApprove, d)

	d, err = order.ReviewDecisionFromString("REQUEST_CHANGES")
	require.NoError(t, err)
	assert.Equal(t, order.ReviewRequestChanges, d)

	_, err = order.ReviewDecisionFromString("reject")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("administrator cancels in progress order without touching checklists", func(t *testing.T) {
		o, photographer := inProgressOrder(t)
		require.NoError(t, o.RecordContact(photographer, baseTime.Add(2*time.Hour)))
		checklistBefore := o.Checklist()
		editorBefore := o.EditorChecklist()
		historyBefore := len(o.History())

		require.NoError(t, o.Cancel(actor(t, kernel.RoleAdministrator), "Client closed office", baseTime.Add(3*time.Hour)))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, "Client closed office", o.CancelReason())
		assert.Len(t, o.History(), historyBefore+1)
		assert.Equal(t, order.Cancelled, lastHistory(o).Status())
		assert.Equal(t, checklistBefore, o.Checklist())
		assert.Equal(t, editorBefore, o.EditorChecklist())
	})

	t.Run("reason is required", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Cancel(actor(t, kernel.RoleAdministrator), "   ", baseTime)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("terminal orders cannot be cancelled", func(t *testing.T) {
		o, photographer, _ := inReviewOrder(t)
		require.NoError(t, o.Review(photographer, order.ReviewApprove, "", baseTime))

		err := o.Cancel(actor(t, kernel.RoleAdministrator), "late", baseTime)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("photographer cannot cancel", func(t *testing.T) {
		o, photographer := inProgressOrder(t)

		err := o.Cancel(photographer, "no time", baseTime)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestOrder_HistoryIsMonotonic(t *testing.T) {
	o := newPendingOrder(t)
	photographer := actor(t, kernel.RolePhotographer)

	// Clock skew: the second call claims to happen before the order was created.
	require.NoError(t, o.Accept(photographer, baseTime.Add(-time.Hour)))
	require.NoError(t, o.UploadPhotos(photographer, "https://dropbox.com/s/abc", baseTime.Add(time.Minute)))

	history := o.History()
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].CreatedAt().Before(history[i-1].CreatedAt()))
		assert.Equal(t, history[i-1].Sequence()+1, history[i].Sequence())
	}
}

func TestOrder_MarkPersisted(t *testing.T) {
	o := newPendingOrder(t)
	require.Len(t, o.PendingHistory(), 1)

	o.MarkPersisted(1)
	assert.Equal(t, 1, o.Version())
	assert.Empty(t, o.PendingHistory())

	require.NoError(t, o.Accept(actor(t, kernel.RolePhotographer), baseTime))
	pending := o.PendingHistory()
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].Sequence())
}

func TestOrder_IsVisibleTo(t *testing.T) {
	o := newPendingOrder(t)
	ws := o.WorkspaceID()
	member, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleBusiness, &ws)

	assert.True(t, o.IsVisibleTo(actor(t, kernel.RoleAdministrator)))
	assert.True(t, o.IsVisibleTo(member))
	assert.False(t, o.IsVisibleTo(actor(t, kernel.RoleBusiness)))
	assert.True(t, o.IsVisibleTo(actor(t, kernel.RolePhotographer)), "open orders are visible to photographers")
	assert.False(t, o.IsVisibleTo(actor(t, kernel.RoleEditor)))
	assert.False(t, o.IsVisibleTo(kernel.Actor{}))

	e, _, editor := editingOrder(t)
	assert.True(t, e.IsVisibleTo(editor))
	assert.False(t, e.IsVisibleTo(actor(t, kernel.RoleEditor)), "claimed editing orders are private")
}

func TestCanView_AssignedPhotographerKeepsAccess(t *testing.T) {
	photographer := actor(t, kernel.RolePhotographer)
	id := photographer.ID()
	v := order.Visibility{WorkspaceID: kernel.NewUUID(), PhotographerID: &id, Status: order.Completed}

	assert.True(t, order.CanView(photographer, v))
	assert.False(t, order.CanView(actor(t, kernel.RolePhotographer), v))
	assert.True(t, order.CanView(kernel.SystemActor(), v))
}
