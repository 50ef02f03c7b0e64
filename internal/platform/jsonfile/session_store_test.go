package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syllacard/internal/domain"
	"syllacard/internal/store"
)

func newTestSessionStore(t *testing.T) (*SessionStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSessionStore(dir, testLogger())
	require.NoError(t, err)
	return s, dir
}

func sampleState(t *testing.T) *domain.SessionState {
	t.Helper()

	apple, err := domain.NewWord("apple", []string{"ap", "ple"}, "", "")
	require.NoError(t, err)

	card, err := domain.NewCard(apple, 1)
	require.NoError(t, err)
	card.RecordFirstAttempt(false)

	return &domain.SessionState{
		DeckName:         "fruit",
		Cards:            []*domain.Card{card},
		RemainingIndices: []int{0},
		Studied:          2,
		StartTime:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionStoreSaveLoadDelete(t *testing.T) {
	s, dir := newTestSessionStore(t)
	state := sampleState(t)

	require.NoError(t, s.Save(state))
	assert.FileExists(t, filepath.Join(dir, "fruit_session.json"))

	loaded, err := s.Load("fruit")
	require.NoError(t, err)
	assert.Equal(t, state.DeckName, loaded.DeckName)
	assert.Equal(t, state.RemainingIndices, loaded.RemainingIndices)
	assert.Equal(t, state.Studied, loaded.Studied)
	assert.True(t, state.StartTime.Equal(loaded.StartTime))
	require.NotNil(t, loaded.Cards[0].FirstAttemptCorrect)
	assert.False(t, *loaded.Cards[0].FirstAttemptCorrect)

	require.NoError(t, s.Delete("fruit"))
	_, err = s.Load("fruit")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	// Deleting again is fine.
	require.NoError(t, s.Delete("fruit"))
}

func TestSessionStoreLoadMissing(t *testing.T) {
	s, _ := newTestSessionStore(t)

	_, err := s.Load("fruit")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionStoreCorruptFile(t *testing.T) {
	s, dir := newTestSessionStore(t)
	path := filepath.Join(dir, "fruit_session.json")

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := s.Load("fruit")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCorruptSession)

	// The file is left in place for the caller to decide about.
	assert.FileExists(t, path)
}

func TestSessionStoreDeckNameMismatch(t *testing.T) {
	s, dir := newTestSessionStore(t)
	state := sampleState(t)

	require.NoError(t, s.Save(state))

	// Pretend someone renamed the file to another deck's slot.
	require.NoError(t, os.Rename(
		filepath.Join(dir, "fruit_session.json"),
		filepath.Join(dir, "animals_session.json")))

	_, err := s.Load("animals")
	assert.ErrorIs(t, err, store.ErrCorruptSession)
}

func TestSessionStoreSaveRejectsInvalid(t *testing.T) {
	s, _ := newTestSessionStore(t)

	state := sampleState(t)
	state.RemainingIndices = []int{5}

	err := s.Save(state)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionIndexRange)
}
