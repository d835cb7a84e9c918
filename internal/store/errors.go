package store

import (
	"errors"
	"fmt"
)

var errTopLevelNull = errors.New("top-level value is null, expected object")

var (
	// ErrInvalidName reports a shortcut name outside [A-Za-z0-9_-]+.
	ErrInvalidName = errors.New("invalid shortcut name")

	// ErrDuplicateName reports an add colliding with an existing name,
	// compared case-insensitively.
	ErrDuplicateName = errors.New("shortcut already exists")

	// ErrUnknownName reports an edit or remove of a name that is not in
	// the map.
	ErrUnknownName = errors.New("no such shortcut")
)

// MalformedError reports a store file that exists but does not parse as a
// flat JSON object of string to string. The file is left untouched for
// manual inspection.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("shortcut store %s is malformed: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}
