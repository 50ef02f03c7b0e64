package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic form of the entity-specific not found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDeckNotFound indicates that the requested deck does not exist.
	ErrDeckNotFound = fmt.Errorf("%w: deck", ErrNotFound)

	// ErrSessionNotFound indicates that no saved session exists for the deck.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// ErrDeckExists is returned when creating or importing a deck whose name
	// is already taken.
	ErrDeckExists = errors.New("deck already exists")

	// ErrCorruptSession is returned when a saved session file exists but
	// cannot be decoded or fails validation. It is never silently mapped to
	// "no session": the caller decides whether to discard the file and start
	// fresh or to abort.
	ErrCorruptSession = errors.New("corrupt session state")
)

// IsNotFound reports whether err is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
