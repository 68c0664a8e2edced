// Package errs provides the typed errors shared by every layer of photoflow.
//
// Each error kind pairs a sentinel (ErrValueIsRequired, ErrNotAuthorized, ...)
// with a struct that carries the offending parameter and an optional cause.
// The structs unwrap to their sentinel, so callers classify failures with
// errors.Is while the HTTP layer can still pull per-field messages out of a
// joined validation error with Fields.
//
// Classification used at the API boundary:
//   - ErrNotAuthorized: actor missing, wrong role, or not the assigned owner
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: field validation
//   - ErrStateIsInvalid: the object is not in the state the operation requires
//   - ErrVersionIsInvalid: a concurrent writer changed the object first
//   - ErrObjectNotFound: lookup matched nothing
package errs
