package order

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"photoflow/internal/core/domain/model/kernel"
	"photoflow/internal/pkg/errs"
)

// MaxMediaCount bounds the photo and video counts of a single order.
const MaxMediaCount = 10000

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	errPhotographerAlreadyAssigned = errors.New("order already has a photographer")
	errEditorAlreadyAssigned       = errors.New("order already has an editor")
	errNoEditor                    = errors.New("order has no editor")
	errPhotosNotUploaded           = errors.New("photos have not been uploaded")
	errEditsNotUploaded            = errors.New("edits have not been uploaded")
)

// Details are the client-facing parameters of a new order.
type Details struct {
	Location      kernel.Location
	Requirements  string
	PhotoCount    *int
	VideoCount    *int
	ScheduledDate *time.Time
}

// Order is the aggregate root of a single photography engagement.
//
// An order belongs to one workspace and carries at most one photographer and
// one editor. It owns both checklists and its status history; all of them
// change only through the methods below, which check the actor, check the
// current state, then apply the change and append history in one step.
//
// version is the optimistic-concurrency token of the persisted row. The
// repository compares it on update and bumps it through MarkPersisted.
type Order struct {
	id             kernel.UUID
	workspaceID    kernel.UUID
	photographerID *kernel.UUID
	editorID       *kernel.UUID
	status         Status
	orderDate      time.Time
	scheduledDate  *time.Time
	startedAt      *time.Time
	completedAt    *time.Time
	location       kernel.Location
	requirements   string
	photoCount     *int
	videoCount     *int
	amount         int64
	cancelReason   string
	version        int

	checklist       PhotographerChecklist
	editorChecklist EditorChecklist

	history          []HistoryEntry
	persistedHistory int

	isConstructed bool
}

// NewOrder creates an order in PENDING_PHOTOGRAPHER with empty checklists and
// a first history row attributed to createdBy.
//
// Parameters:
//   - id, workspaceID: must be valid UUIDs
//   - details: location is required, counts must lie in [0, MaxMediaCount]
//   - amount: the priced total, never negative
//   - createdBy: an administrator or the system actor
//   - now: creation time, used as orderDate and for the history row
//
// Returns a NotAuthorizedError for other actors, joined field errors for
// invalid input.
func NewOrder(
	id kernel.UUID,
	workspaceID kernel.UUID,
	details Details,
	amount int64,
	createdBy kernel.Actor,
	now time.Time,
) (*Order, error) {
	if err := AuthorizeCreate(createdBy); err != nil {
		return nil, err
	}

	order := &Order{
		status:        PendingPhotographer,
		orderDate:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setWorkspaceID(workspaceID),
		order.setLocation(details.Location),
		order.setCount("photoCount", details.PhotoCount, &order.photoCount),
		order.setCount("videoCount", details.VideoCount, &order.videoCount),
		order.setAmount(amount),
	); err != nil {
		return nil, err
	}

	order.requirements = strings.TrimSpace(details.Requirements)
	order.scheduledDate = copyTime(details.ScheduledDate)
	order.appendHistory(PendingPhotographer, createdBy.ID(), "Order created", now)

	return order, nil
}

// AuthorizeCreate allows administrators and the system actor.
func AuthorizeCreate(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdministrator() && !actor.Is(kernel.RoleSystem) {
		return errs.NewNotAuthorizedErrorWithCause(
			"create order", fmt.Errorf("role %s cannot create orders", actor.Role()))
	}
	return nil
}

// Validate returns ErrOrderIsNotConstructed for nil and zero-value orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                        { return o.id }
func (o *Order) WorkspaceID() kernel.UUID               { return o.workspaceID }
func (o *Order) Photographer() *kernel.UUID             { return copyUUID(o.photographerID) }
func (o *Order) Editor() *kernel.UUID                   { return copyUUID(o.editorID) }
func (o *Order) Status() Status                         { return o.status }
func (o *Order) OrderDate() time.Time                   { return o.orderDate }
func (o *Order) ScheduledDate() *time.Time              { return copyTime(o.scheduledDate) }
func (o *Order) StartedAt() *time.Time                  { return copyTime(o.startedAt) }
func (o *Order) CompletedAt() *time.Time                { return copyTime(o.completedAt) }
func (o *Order) Location() kernel.Location              { return o.location }
func (o *Order) Requirements() string                   { return o.requirements }
func (o *Order) PhotoCount() *int                       { return copyInt(o.photoCount) }
func (o *Order) VideoCount() *int                       { return copyInt(o.videoCount) }
func (o *Order) Amount() int64                          { return o.amount }
func (o *Order) CancelReason() string                   { return o.cancelReason }
func (o *Order) Version() int                           { return o.version }
func (o *Order) Checklist() PhotographerChecklist       { return o.checklist }
func (o *Order) EditorChecklist() EditorChecklist       { return o.editorChecklist }
func (o *Order) History() []HistoryEntry                { return append([]HistoryEntry(nil), o.history...) }
func (o *Order) PendingHistory() []HistoryEntry         { return append([]HistoryEntry(nil), o.history[o.persistedHistory:]...) }
func (o *Order) IsPhotographer(actor kernel.Actor) bool { return sameID(o.photographerID, actor) }
func (o *Order) IsEditor(actor kernel.Actor) bool       { return sameID(o.editorID, actor) }

// MarkPersisted records that the repository stored the order at version and
// wrote every pending history row.
func (o *Order) MarkPersisted(version int) {
	o.version = version
	o.persistedHistory = len(o.history)
}

// AssignPhotographer lets an administrator hand an unclaimed order to a
// photographer. The order moves to NOT_STARTED.
func (o *Order) AssignPhotographer(actor kernel.Actor, photographerID kernel.UUID, now time.Time) error {
	if err := requireAdministrator(actor, "assign photographer"); err != nil {
		return err
	}
	if err := photographerID.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(PendingPhotographer); err != nil {
		return err
	}
	if o.photographerID != nil {
		return errs.NewStateIsInvalidErrorWithCause("photographerId", errPhotographerAlreadyAssigned)
	}

	o.photographerID = &photographerID
	return o.moveTo(NotStarted, actor, "Photographer assigned", now)
}

// Accept lets a photographer claim an unclaimed order. The order moves
// straight to IN_PROGRESS and startedAt is set.
func (o *Order) Accept(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Is(kernel.RolePhotographer) {
		return errs.NewNotAuthorizedErrorWithCause(
			"accept order", fmt.Errorf("role %s cannot accept orders", actor.Role()))
	}
	if err := o.requireStatus(PendingPhotographer); err != nil {
		return err
	}
	if o.photographerID != nil {
		return errs.NewStateIsInvalidErrorWithCause("photographerId", errPhotographerAlreadyAssigned)
	}

	id := actor.ID()
	o.photographerID = &id
	o.startedAt = timePtr(now)
	return o.moveTo(InProgress, actor, "Order accepted", now)
}

// RecordContact stamps the photographer checklist when the client was reached.
// A NOT_STARTED order moves to IN_PROGRESS; otherwise only the checklist changes.
func (o *Order) RecordContact(actor kernel.Actor, now time.Time) error {
	if err := o.authorizePhotographer(actor, "record contact"); err != nil {
		return err
	}
	if err := o.requireStatus(NotStarted, InProgress); err != nil {
		return err
	}

	o.checklist.contactedAt = timePtr(now)
	return o.startIfNotStarted(actor, "Client contacted", now)
}

// ScheduleShoot stores the shoot date on the order and stamps the checklist.
// Calling it again reschedules.
func (o *Order) ScheduleShoot(actor kernel.Actor, shootDate time.Time, now time.Time) error {
	if err := o.authorizePhotographer(actor, "schedule shoot"); err != nil {
		return err
	}
	if shootDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	if err := o.requireStatus(NotStarted, InProgress); err != nil {
		return err
	}

	o.checklist.scheduledAt = timePtr(now)
	o.scheduledDate = timePtr(shootDate)
	return o.startIfNotStarted(actor, "Shoot scheduled", now)
}

// UploadPhotos records the raw photo link and hands the order to editing.
func (o *Order) UploadPhotos(actor kernel.Actor, dropboxURL string, now time.Time) error {
	if err := o.authorizePhotographer(actor, "upload photos"); err != nil {
		return err
	}
	link, err := parseLink("dropboxUrl", dropboxURL)
	if err != nil {
		return err
	}
	if err = o.requireStatus(InProgress); err != nil {
		return err
	}

	o.checklist.dropboxURL = link
	o.checklist.uploadedAt = timePtr(now)
	o.editorChecklist.editingStartedAt = timePtr(now)
	return o.moveTo(Editing, actor, "Photos uploaded", now)
}

// AssignEditor lets an editor claim an EDITING order that has photos and no
// editor yet. Status stays EDITING; a history row records the assignment.
func (o *Order) AssignEditor(actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Is(kernel.RoleEditor) {
		return errs.NewNotAuthorizedErrorWithCause(
			"assign editor", fmt.Errorf("role %s cannot take editing work", actor.Role()))
	}
	if err := o.requireStatus(Editing); err != nil {
		return err
	}
	if o.editorID != nil {
		return errs.NewStateIsInvalidErrorWithCause("editorId", errEditorAlreadyAssigned)
	}
	if o.checklist.dropboxURL == "" {
		return errs.NewStateIsInvalidErrorWithCause("dropboxUrl", errPhotosNotUploaded)
	}

	id := actor.ID()
	o.editorID = &id
	o.appendHistory(Editing, actor.ID(), "Editor assigned", now)
	return nil
}

// UploadEdits stores the link to the edited set. Checklist only.
func (o *Order) UploadEdits(actor kernel.Actor, reviewURL string, now time.Time) error {
	if err := o.authorizeEditor(actor, "upload edits"); err != nil {
		return err
	}
	link, err := parseLink("reviewUrl", reviewURL)
	if err != nil {
		return err
	}
	if err = o.requireStatus(Editing); err != nil {
		return err
	}

	o.editorChecklist.uploadedAt = timePtr(now)
	o.editorChecklist.reviewURL = link
	return nil
}

// SubmitForReview moves an edited order to IN_REVIEW.
func (o *Order) SubmitForReview(actor kernel.Actor, now time.Time) error {
	if err := o.authorizeEditor(actor, "submit for review"); err != nil {
		return err
	}
	if err := o.requireStatus(Editing); err != nil {
		return err
	}
	if o.editorID == nil {
		return errs.NewStateIsInvalidErrorWithCause("editorId", errNoEditor)
	}
	if o.editorChecklist.uploadedAt == nil {
		return errs.NewStateIsInvalidErrorWithCause("editorChecklist", errEditsNotUploaded)
	}

	o.editorChecklist.completedAt = timePtr(now)
	return o.moveTo(InReview, actor, "Submitted for review", now)
}

// Review applies the photographer's decision on an order in IN_REVIEW.
// Approval completes the order; a change request returns it to EDITING and
// clears the editor's completion stamp.
func (o *Order) Review(actor kernel.Actor, decision ReviewDecision, notes string, now time.Time) error {
	if err := o.authorizePhotographer(actor, "review order"); err != nil {
		return err
	}
	if err := decision.Validate(); err != nil {
		return err
	}
	if err := o.requireStatus(InReview); err != nil {
		return err
	}

	notes = strings.TrimSpace(notes)
	if decision == ReviewApprove {
		if notes == "" {
			notes = "Order approved"
		}
		o.completedAt = timePtr(now)
		return o.moveTo(Completed, actor, notes, now)
	}

	if notes == "" {
		notes = "Changes requested"
	}
	o.editorChecklist.completedAt = nil
	return o.moveTo(Editing, actor, notes, now)
}

// Cancel ends an active order. Checklists are left as they were.
func (o *Order) Cancel(actor kernel.Actor, reason string, now time.Time) error {
	if err := requireAdministrator(actor, "cancel order"); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("cancelReason")
	}
	if !o.status.IsActive() {
		return errs.NewStateIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s order cannot be cancelled", o.status))
	}

	o.cancelReason = reason
	return o.moveTo(Cancelled, actor, reason, now)
}

// AuthorizeDelete checks that actor may remove the order.
func (o *Order) AuthorizeDelete(actor kernel.Actor) error {
	return requireAdministrator(actor, "delete order")
}

// IsVisibleTo reports whether actor may read the order.
func (o *Order) IsVisibleTo(actor kernel.Actor) bool {
	return CanView(actor, Visibility{
		WorkspaceID:    o.workspaceID,
		PhotographerID: o.photographerID,
		EditorID:       o.editorID,
		Status:         o.status,
	})
}

// Visibility holds the order fields that decide who may read it.
type Visibility struct {
	WorkspaceID    kernel.UUID
	PhotographerID *kernel.UUID
	EditorID       *kernel.UUID
	Status         Status
}

// CanView applies the read rules to an order known only by its keys.
//
// Administrators see everything, business users see their workspace,
// photographers and editors see what they are assigned to plus the work they
// could claim right now.
func CanView(actor kernel.Actor, v Visibility) bool {
	switch {
	case actor.Validate() != nil:
		return false
	case actor.IsAdministrator(), actor.Is(kernel.RoleSystem):
		return true
	case actor.Is(kernel.RoleBusiness):
		return actor.BelongsTo(v.WorkspaceID)
	case actor.Is(kernel.RolePhotographer):
		return sameID(v.PhotographerID, actor) || (v.Status == PendingPhotographer && v.PhotographerID == nil)
	case actor.Is(kernel.RoleEditor):
		return sameID(v.EditorID, actor) || (v.Status == Editing && v.EditorID == nil)
	default:
		return false
	}
}

func (o *Order) startIfNotStarted(actor kernel.Actor, notes string, now time.Time) error {
	if o.status != NotStarted {
		return nil
	}
	if o.startedAt == nil {
		o.startedAt = timePtr(now)
	}
	return o.moveTo(InProgress, actor, notes, now)
}

func (o *Order) moveTo(next Status, actor kernel.Actor, notes string, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendHistory(newStatus, actor.ID(), notes, now)
	return nil
}

// appendHistory clamps createdAt so that timestamps never run backwards,
// even when the caller's clock is behind the last stored row.
func (o *Order) appendHistory(status Status, changedBy kernel.UUID, notes string, now time.Time) {
	createdAt := now
	if n := len(o.history); n > 0 && createdAt.Before(o.history[n-1].createdAt) {
		createdAt = o.history[n-1].createdAt
	}

	o.history = append(o.history, HistoryEntry{
		id:        kernel.NewUUID(),
		status:    status,
		changedBy: changedBy,
		notes:     notes,
		createdAt: createdAt,
		sequence:  len(o.history) + 1,
	})
}

func (o *Order) requireStatus(allowed ...Status) error {
	for _, s := range allowed {
		if o.status == s {
			return nil
		}
	}
	return errs.NewStateIsInvalidErrorWithCause(
		"status", fmt.Errorf("operation is not allowed while order is %s", o.status))
}

func (o *Order) authorizePhotographer(actor kernel.Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsAdministrator() || o.IsPhotographer(actor) {
		return nil
	}
	return errs.NewNotAuthorizedErrorWithCause(action, errors.New("actor is not the assigned photographer"))
}

func (o *Order) authorizeEditor(actor kernel.Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsAdministrator() || o.IsEditor(actor) {
		return nil
	}
	return errs.NewNotAuthorizedErrorWithCause(action, errors.New("actor is not the assigned editor"))
}

func requireAdministrator(actor kernel.Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdministrator() {
		return errs.NewNotAuthorizedErrorWithCause(action, fmt.Errorf("role %s is not an administrator", actor.Role()))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWorkspaceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("workspaceId", err)
	}
	o.workspaceID = id
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	o.location = location
	return nil
}

func (o *Order) setCount(name string, value *int, target **int) error {
	if value == nil {
		*target = nil
		return nil
	}
	if *value < 0 || *value > MaxMediaCount {
		return errs.NewValueIsOutOfRangeError(name, *value, 0, MaxMediaCount)
	}
	*target = copyInt(value)
	return nil
}

func (o *Order) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, "unbounded")
	}
	o.amount = amount
	return nil
}

func parseLink(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errs.NewValueIsRequiredError(field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errs.NewValueIsInvalidErrorWithCause(field, errors.New("must be an absolute http(s) URL"))
	}
	return u.String(), nil
}

func sameID(id *kernel.UUID, actor kernel.Actor) bool {
	return id != nil && actor.Validate() == nil && id.IsEqual(actor.ID())
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
