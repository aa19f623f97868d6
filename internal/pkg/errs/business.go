package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the business-rule error group. Mutation operations
// return these (wrapped in their typed carriers) instead of panicking;
// callers classify them with errors.Is.
var (
	ErrForbidden     = errors.New("operation is forbidden for role")
	ErrTerminalState = errors.New("item is in a terminal status")
	ErrConflict      = errors.New("object was modified concurrently")
)

// ForbiddenError indicates that the acting role is not permitted to set
// the requested status. Role and Status carry the string names so the
// failure can be explained to the user, not just detected.
type ForbiddenError struct {
	Role   string
	Status string
	Cause  error
}

// NewForbiddenError creates a ForbiddenError for the given role and requested status.
func NewForbiddenError(role, status string) *ForbiddenError {
	return &ForbiddenError{Role: role, Status: status}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying cause.
func NewForbiddenErrorWithCause(role, status string, cause error) *ForbiddenError {
	return &ForbiddenError{Role: role, Status: status, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: role %q may not set status %q (cause: %s)", ErrForbidden, e.Role, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s: role %q may not set status %q", ErrForbidden, e.Role, e.Status)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// TerminalStateError indicates that an item already reached a terminal
// status and its status may no longer change. Status carries the name of
// the terminal status the item is locked in.
type TerminalStateError struct {
	ItemID string
	Status string
	Cause  error
}

// NewTerminalStateError creates a TerminalStateError for the item locked in the given status.
func NewTerminalStateError(itemID, status string) *TerminalStateError {
	return &TerminalStateError{ItemID: itemID, Status: status}
}

// NewTerminalStateErrorWithCause creates a TerminalStateError wrapping an underlying cause.
func NewTerminalStateErrorWithCause(itemID, status string, cause error) *TerminalStateError {
	return &TerminalStateError{ItemID: itemID, Status: status, Cause: cause}
}

func (e *TerminalStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: item %s is %q (cause: %s)", ErrTerminalState, e.ItemID, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s: item %s is %q", ErrTerminalState, e.ItemID, e.Status)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// ConflictError indicates an optimistic-concurrency failure: the aggregate
// identified by ID changed between read and write, so the write was refused
// rather than silently overwriting.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError for the named aggregate identifier.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrConflict, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
