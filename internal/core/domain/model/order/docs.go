// Package order implements the Order aggregate and its status state machine.
//
// An Order moves along PENDING_PHOTOGRAPHER, NOT_STARTED, IN_PROGRESS,
// EDITING, IN_REVIEW and COMPLETED, with CANCELLED reachable from every
// active status and IN_REVIEW able to fall back to EDITING when the
// photographer requests changes.
//
// Each operation takes the acting kernel.Actor and the current time. It first
// checks authentication, then role or ownership, then the current state, and
// only then mutates the order and appends exactly one HistoryEntry when the
// status changes or an assignee is set. Checklist-only updates append no
// history. Persistence adapters write the order, both checklists and
// PendingHistory in one transaction and call MarkPersisted afterwards.
package order
