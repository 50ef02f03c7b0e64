// Package cli implements the menu-driven shell: deck listing and creation,
// CSV/XLSX import, session start, and stats reset. It is pure I/O plumbing
// around the stores, the importer, and the session engine.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"syllacard/internal/config"
	"syllacard/internal/domain"
	"syllacard/internal/service/importer"
	"syllacard/internal/service/session"
	"syllacard/internal/store"
)

// Menu is the interactive shell. It owns the terminal streams; everything
// else is injected.
type Menu struct {
	cfg      *config.Config
	decks    store.DeckStore
	sessions store.SessionStore
	imp      *importer.Importer
	logger   *slog.Logger

	in  *bufio.Scanner
	out io.Writer
}

// New creates a Menu reading from in and writing to out.
func New(
	cfg *config.Config,
	decks store.DeckStore,
	sessions store.SessionStore,
	imp *importer.Importer,
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		cfg:      cfg,
		decks:    decks,
		sessions: sessions,
		imp:      imp,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the main menu loop until the user exits or input ends.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, styleHeader.Render("Syllacard: syllable drill"))

	for {
		fmt.Fprintln(m.out, "\nMain Menu:")
		fmt.Fprintln(m.out, "1. List decks")
		fmt.Fprintln(m.out, "2. Create new deck")
		fmt.Fprintln(m.out, "3. Import deck from file")
		fmt.Fprintln(m.out, "4. Start session")
		fmt.Fprintln(m.out, "5. Reset deck")
		fmt.Fprintln(m.out, "6. Exit")

		choice, err := m.readLine("\nEnter your choice (1-6): ")
		if err != nil {
			return nil // input closed, leave quietly
		}

		switch choice {
		case "1":
			m.listDecks()
		case "2":
			m.createDeck()
		case "3":
			m.importDeck()
		case "4":
			m.startSession()
		case "5":
			m.resetDeck()
		case "6":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) listDecks() {
	names, err := m.decks.List()
	if err != nil {
		m.showError(err)
		return
	}
	if len(names) == 0 {
		fmt.Fprintln(m.out, "No decks available. Create or import a deck first.")
		return
	}

	fmt.Fprintln(m.out, "Available Decks:")
	for i, name := range names {
		deck, err := m.decks.Load(name)
		if err != nil {
			fmt.Fprintf(m.out, "%d. %s (error loading deck: %v)\n", i+1, name, err)
			continue
		}
		fmt.Fprintf(m.out, "%d. %s (%d words, %d sessions)\n",
			i+1, name, len(deck.Words), deck.Stats.TotalSessions)
	}
}

func (m *Menu) createDeck() {
	name, err := m.readLine("Enter deck name: ")
	if err != nil || name == "" {
		fmt.Fprintln(m.out, "Deck name cannot be empty.")
		return
	}

	if _, err := m.decks.Create(name); err != nil {
		m.showError(err)
		return
	}
	fmt.Fprintf(m.out, "Deck %q created successfully.\n", name)
}

func (m *Menu) importDeck() {
	fmt.Fprintln(m.out, "CSV files need the header: word,IPA,japanese")
	fmt.Fprintln(m.out, "XLSX files use columns A=word, B=IPA, C=japanese with one header row.")

	path, err := m.readLine("Enter file path: ")
	if err != nil || path == "" {
		return
	}
	name, err := m.readLine("Enter deck name: ")
	if err != nil || name == "" {
		fmt.Fprintln(m.out, "Deck name cannot be empty.")
		return
	}

	var imported int
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		d, err := m.imp.FromXLSX(path, name)
		if err != nil {
			m.showError(err)
			return
		}
		imported = len(d.Words)
	default:
		d, err := m.imp.FromCSV(path, name)
		if err != nil {
			m.showError(err)
			return
		}
		imported = len(d.Words)
	}

	fmt.Fprintf(m.out, "Deck %q imported successfully with %d words.\n", name, imported)
}

func (m *Menu) startSession() {
	name, ok := m.pickDeck("Select deck (number): ")
	if !ok {
		return
	}

	deck, err := m.decks.Load(name)
	if err != nil {
		m.showError(err)
		return
	}
	if len(deck.Words) == 0 {
		fmt.Fprintf(m.out, "Deck %q is empty. Add words before starting a session.\n", name)
		return
	}

	count := m.readCardCount(len(deck.Words))

	engine := session.New(deck, m.sessions, m.logger)
	if err := engine.Prepare(count); err != nil {
		if errors.Is(err, store.ErrCorruptSession) {
			if !m.offerDiscard(name, err) {
				return
			}
			if err := engine.Prepare(count); err != nil {
				m.showError(err)
				return
			}
		} else {
			m.showError(err)
			return
		}
	}

	fmt.Fprintf(m.out, "\nStarting session with %d cards from deck %q\n",
		engine.RemainingCount(), name)
	fmt.Fprintf(m.out, "For each card, type the missing syllable (%s)\n", domain.HiddenMarker)
	fmt.Fprintf(m.out, "Type %q to save and exit the session\n", session.ExitSentinel)
	fmt.Fprintln(m.out, strings.Repeat("-", 50))

	summary, err := engine.Run(&consolePresenter{in: m.in, out: m.out})
	if err != nil {
		m.showError(err)
		return
	}

	if err := m.decks.Save(deck); err != nil {
		m.showError(err)
	}

	m.showSummary(summary)
}

func (m *Menu) resetDeck() {
	name, ok := m.pickDeck("Select deck to reset (number): ")
	if !ok {
		return
	}

	confirm, err := m.readLine(
		fmt.Sprintf("Are you sure you want to reset all statistics for deck %q? (y/n): ", name))
	if err != nil || !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(m.out, "Reset cancelled.")
		return
	}

	deck, err := m.decks.Load(name)
	if err != nil {
		m.showError(err)
		return
	}

	deck.Stats.Reset()
	if err := m.decks.Save(deck); err != nil {
		m.showError(err)
		return
	}
	fmt.Fprintf(m.out, "Deck %q has been reset.\n", name)
}

// pickDeck lists decks and reads a 1-based selection.
func (m *Menu) pickDeck(prompt string) (string, bool) {
	names, err := m.decks.List()
	if err != nil {
		m.showError(err)
		return "", false
	}
	if len(names) == 0 {
		fmt.Fprintln(m.out, "No decks available. Create or import a deck first.")
		return "", false
	}

	fmt.Fprintln(m.out, "Available Decks:")
	for i, n := range names {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, n)
	}

	choice, err := m.readLine("\n" + prompt)
	if err != nil {
		return "", false
	}

	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(names) {
		fmt.Fprintln(m.out, "Invalid selection.")
		return "", false
	}
	return names[idx-1], true
}

// readCardCount prompts for a card count and clamps it to the deck size.
// Empty input takes the configured default; anything unparseable or
// non-positive selects the whole deck.
func (m *Menu) readCardCount(max int) int {
	def := m.cfg.Session.DefaultCards
	if def > max {
		def = max
	}

	raw, err := m.readLine(fmt.Sprintf("Enter number of cards to study (max %d, default %d): ", max, def))
	if err != nil {
		return def
	}
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		fmt.Fprintf(m.out, "Invalid number, using all %d cards.\n", max)
		return max
	}
	if n > max {
		fmt.Fprintf(m.out, "Limiting to %d cards (all available).\n", max)
		return max
	}
	return n
}

// offerDiscard surfaces a corrupt saved session and asks whether to discard
// it and start fresh. Returns true when the file was discarded.
func (m *Menu) offerDiscard(deckName string, cause error) bool {
	fmt.Fprintf(m.out, "%s %v\n", styleIncorrect.Render("Saved session is corrupt:"), cause)

	answer, err := m.readLine("Discard the saved session and start fresh? (y/n): ")
	if err != nil || !strings.EqualFold(answer, "y") {
		fmt.Fprintln(m.out, "Session not started.")
		return false
	}

	if err := m.sessions.Delete(deckName); err != nil {
		m.showError(err)
		return false
	}
	return true
}

func (m *Menu) showSummary(s *session.Summary) {
	fmt.Fprintln(m.out, "\nSession Statistics:")
	fmt.Fprintf(m.out, "Time spent: %s\n", formatDuration(s.Elapsed))
	fmt.Fprintf(m.out, "Cards studied: %d\n", s.Studied)
	fmt.Fprintf(m.out, "Cards remembered on first attempt: %d out of %d (%d%%)\n",
		s.Remembered, s.TotalCards, percentage(s.Remembered, s.TotalCards))
}

func (m *Menu) showError(err error) {
	m.logger.Error("menu operation failed", "error", err)
	fmt.Fprintf(m.out, "%s %v\n", styleIncorrect.Render("Error:"), err)
}

// readLine prints a prompt and reads one trimmed line.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}
