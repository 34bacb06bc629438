package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned when an action identifier is not part of the compiled-in set.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownToggle is returned for an unrecognised toggle identifier.
	ErrUnknownToggle = errors.New("unknown toggle")
	// ErrInvalidKey is returned when a key name or code cannot be parsed.
	ErrInvalidKey = errors.New("invalid key")
	// ErrDuplicateVariable is returned when a persistence name is registered twice.
	ErrDuplicateVariable = errors.New("variable already registered")
	// ErrInvalidVariable is returned for a variable with no name or accessors.
	ErrInvalidVariable = errors.New("invalid variable")
	// ErrInvalidGroup is returned when a group definition is malformed.
	ErrInvalidGroup = errors.New("invalid group")
)

// UnknownError carries the offending value alongside a sentinel kind.
type UnknownError struct {
	Kind  error
	Value string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Value)
}

func (e *UnknownError) Unwrap() error {
	return e.Kind
}
