package store

import "syllacard/internal/domain"

// DeckStore defines the interface for deck persistence.
type DeckStore interface {
	// List returns the names of all stored decks, sorted.
	List() ([]string, error)

	// Load retrieves a deck by name.
	// Returns ErrDeckNotFound if no deck with that name exists.
	Load(name string) (*domain.Deck, error)

	// Save writes the deck, replacing any previous contents. The write is
	// whole-file: temp file then rename.
	Save(deck *domain.Deck) error

	// Create stores a new empty deck with the given name.
	// Returns ErrDeckExists if the name is already taken.
	Create(name string) (*domain.Deck, error)

	// Exists reports whether a deck with the given name is stored.
	Exists(name string) (bool, error)
}
