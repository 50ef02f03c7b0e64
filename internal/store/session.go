package store

import "syllacard/internal/domain"

// SessionStore defines the interface for saved-session persistence.
// Each deck has at most one live saved session, keyed by deck name.
type SessionStore interface {
	// Load retrieves the saved session for a deck.
	// Returns ErrSessionNotFound if no session is saved for the deck.
	// Returns ErrCorruptSession if a file exists but cannot be decoded or
	// fails validation; the file is left in place for the caller to decide.
	Load(deckName string) (*domain.SessionState, error)

	// Save writes the session state, replacing any previous saved session
	// for the same deck.
	Save(state *domain.SessionState) error

	// Delete removes the saved session for a deck. Deleting a session that
	// does not exist is not an error.
	Delete(deckName string) error
}
