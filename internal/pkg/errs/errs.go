package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrStateIsInvalid    = errors.New("state is invalid")
)

// ObjectNotFoundError reports a lookup that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed input value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing input value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports a write against a stale aggregate version.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// NotAuthorizedError reports an actor that is missing, has the wrong role,
// or does not own the object it acts on.
type NotAuthorizedError struct {
	Action string
	Cause  error
}

func NewNotAuthorizedError(action string) *NotAuthorizedError {
	return &NotAuthorizedError{Action: action}
}

func NewNotAuthorizedErrorWithCause(action string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{Action: action, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrNotAuthorized, e.Action), e.Cause)
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// StateIsInvalidError reports an object that is not in the state an
// operation requires.
type StateIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewStateIsInvalidError(paramName string) *StateIsInvalidError {
	return &StateIsInvalidError{ParamName: paramName}
}

func NewStateIsInvalidErrorWithCause(paramName string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *StateIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStateIsInvalid, e.ParamName), e.Cause)
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// IsValidation reports whether err carries any input validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// Fields flattens the validation failures found in err, including errors
// combined with errors.Join, into a map keyed by parameter name.
// The first failure reported for a parameter wins.
func Fields(err error) map[string]string {
	fields := make(map[string]string)
	collectFields(err, fields)
	return fields
}

func collectFields(err error, fields map[string]string) {
	switch e := err.(type) { //nolint:errorlint // walking the tree by hand
	case nil:
		return
	case *ValueIsRequiredError:
		addField(fields, e.ParamName, e.Error())
	case *ValueIsInvalidError:
		addField(fields, e.ParamName, e.Error())
	case *ValueIsOutOfRangeError:
		addField(fields, e.ParamName, e.Error())
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectFields(inner, fields)
		}
	case interface{ Unwrap() error }:
		collectFields(e.Unwrap(), fields)
	}
}

func addField(fields map[string]string, name, msg string) {
	if _, ok := fields[name]; !ok {
		fields[name] = msg
	}
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
