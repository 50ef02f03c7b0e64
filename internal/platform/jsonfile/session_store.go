package jsonfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"syllacard/internal/domain"
	"syllacard/internal/store"
)

// SessionStore persists at most one saved session per deck, as
// <deck>_session.json next to the deck files.
type SessionStore struct {
	dir    string
	logger *slog.Logger
}

// NewSessionStore creates a SessionStore rooted at dir, creating the
// directory if needed.
func NewSessionStore(dir string, logger *slog.Logger) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session directory %q: %w", dir, err)
	}

	return &SessionStore{dir: dir, logger: logger}, nil
}

// Load reads and validates the saved session for a deck.
//
// A missing file maps to store.ErrSessionNotFound. A file that exists but
// cannot be decoded, fails validation, or names a different deck maps to
// store.ErrCorruptSession; the file is left in place so the caller can
// choose between discarding it and aborting.
func (s *SessionStore) Load(deckName string) (*domain.SessionState, error) {
	path := s.sessionPath(deckName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: deck %q", store.ErrSessionNotFound, deckName)
		}
		return nil, fmt.Errorf("reading session for deck %q: %w", deckName, err)
	}

	var state domain.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %v", store.ErrCorruptSession, path, err)
	}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrCorruptSession, err)
	}

	if state.DeckName != deckName {
		return nil, fmt.Errorf("%w: file names deck %q, expected %q",
			store.ErrCorruptSession, state.DeckName, deckName)
	}

	s.logger.Info("loaded saved session",
		"deck", deckName, "remaining", len(state.RemainingIndices))
	return &state, nil
}

// Save writes the session state via a temp file and rename.
func (s *SessionStore) Save(state *domain.SessionState) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid session: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session for deck %q: %w", state.DeckName, err)
	}

	if err := writeAtomic(s.sessionPath(state.DeckName), data); err != nil {
		return fmt.Errorf("writing session for deck %q: %w", state.DeckName, err)
	}

	s.logger.Info("saved session",
		"deck", state.DeckName, "remaining", len(state.RemainingIndices))
	return nil
}

// Delete removes the saved session for a deck. A missing file is not an error.
func (s *SessionStore) Delete(deckName string) error {
	err := os.Remove(s.sessionPath(deckName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting session for deck %q: %w", deckName, err)
	}

	s.logger.Info("deleted saved session", "deck", deckName)
	return nil
}

func (s *SessionStore) sessionPath(deckName string) string {
	return filepath.Join(s.dir, deckName+sessionSuffix)
}

// writeAtomic writes data to a uuid-suffixed temp file in the target
// directory and renames it over path, narrowing the window in which a crash
// can corrupt the file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

var _ store.SessionStore = (*SessionStore)(nil)
