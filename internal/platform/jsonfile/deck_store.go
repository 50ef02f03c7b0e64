package jsonfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"syllacard/internal/domain"
	"syllacard/internal/store"
)

// deckSuffix is the file extension for deck files; session files share the
// directory and are distinguished by sessionSuffix.
const (
	deckSuffix    = ".json"
	sessionSuffix = "_session.json"
)

// DeckStore persists decks as pretty-printed JSON files, one file per deck,
// named <deck>.json inside a single directory.
type DeckStore struct {
	dir    string
	logger *slog.Logger
}

// NewDeckStore creates a DeckStore rooted at dir, creating the directory
// if needed.
func NewDeckStore(dir string, logger *slog.Logger) (*DeckStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating deck directory %q: %w", dir, err)
	}

	return &DeckStore{dir: dir, logger: logger}, nil
}

// List returns all stored deck names, sorted. Saved-session files living in
// the same directory are excluded.
func (s *DeckStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading deck directory %q: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, deckSuffix) || strings.HasSuffix(name, sessionSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, deckSuffix))
	}

	sort.Strings(names)
	return names, nil
}

// Load reads and validates a deck file.
// Returns store.ErrDeckNotFound if the file does not exist.
func (s *DeckStore) Load(name string) (*domain.Deck, error) {
	data, err := os.ReadFile(s.deckPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", store.ErrDeckNotFound, name)
		}
		return nil, fmt.Errorf("reading deck %q: %w", name, err)
	}

	var deck domain.Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("decoding deck %q: %w", name, err)
	}

	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("deck %q failed validation: %w", name, err)
	}

	s.logger.Debug("loaded deck", "deck", name, "words", len(deck.Words))
	return &deck, nil
}

// Save writes the deck to its file via a temp file and rename, so a crash
// mid-write cannot leave a half-written deck behind.
func (s *DeckStore) Save(deck *domain.Deck) error {
	if err := deck.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid deck: %w", err)
	}

	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding deck %q: %w", deck.Name, err)
	}

	if err := writeAtomic(s.deckPath(deck.Name), data); err != nil {
		return fmt.Errorf("writing deck %q: %w", deck.Name, err)
	}

	s.logger.Info("saved deck", "deck", deck.Name, "words", len(deck.Words))
	return nil
}

// Create stores a new empty deck.
// Returns store.ErrDeckExists if the name is already taken.
func (s *DeckStore) Create(name string) (*domain.Deck, error) {
	deck, err := domain.NewDeck(name)
	if err != nil {
		return nil, err
	}

	exists, err := s.Exists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", store.ErrDeckExists, name)
	}

	if err := s.Save(deck); err != nil {
		return nil, err
	}

	return deck, nil
}

// Exists reports whether a deck file is present for the name.
func (s *DeckStore) Exists(name string) (bool, error) {
	_, err := os.Stat(s.deckPath(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking deck %q: %w", name, err)
}

func (s *DeckStore) deckPath(name string) string {
	return filepath.Join(s.dir, name+deckSuffix)
}

var _ store.DeckStore = (*DeckStore)(nil)
