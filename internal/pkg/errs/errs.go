package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used to classify failures across the application.
// Callers match on these with errors.Is; the typed errors below carry
// the details and unwrap to their sentinel.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsRequired     = errors.New("value is required")
	ErrStateIsInvalid      = errors.New("state does not allow this action")
	ErrUnauthorized        = errors.New("caller is not authorized")
)

// sanitize strips newlines from values interpolated into error messages
// so a single log line stays a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a record required to exist is absent.
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
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates that a record required to be absent
// is already present under its key.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, sanitize(e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ValueIsInvalidError indicates a malformed or out-of-contract input value.
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
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates a missing value that the operation needs.
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
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StateIsInvalidError indicates an operation attempted from a lifecycle
// state that forbids it.
type StateIsInvalidError struct {
	Action string
	State  string
	Cause  error
}

func NewStateIsInvalidError(action, state string) *StateIsInvalidError {
	return &StateIsInvalidError{Action: action, State: state}
}

func NewStateIsInvalidErrorWithCause(action, state string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{Action: action, State: state, Cause: cause}
}

func (e *StateIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s from state %s (cause: %s)",
			ErrStateIsInvalid, e.Action, sanitize(e.State), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: cannot %s from state %s", ErrStateIsInvalid, e.Action, sanitize(e.State))
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// UnauthorizedError indicates a caller whose role attributes do not match
// any of the roles an operation accepts.
type UnauthorizedError struct {
	ActorID       string
	AcceptedRoles []string
	Cause         error
}

func NewUnauthorizedError(actorID string, acceptedRoles ...string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, AcceptedRoles: acceptedRoles}
}

func NewUnauthorizedErrorWithCause(actorID string, cause error, acceptedRoles ...string) *UnauthorizedError {
	return &UnauthorizedError{ActorID: actorID, AcceptedRoles: acceptedRoles, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	accepted := strings.Join(e.AcceptedRoles, " or ")
	if e.Cause != nil {
		return fmt.Sprintf("%s: caller %s must hold role %s (cause: %s)",
			ErrUnauthorized, sanitize(e.ActorID), accepted, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: caller %s must hold role %s", ErrUnauthorized, sanitize(e.ActorID), accepted)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
