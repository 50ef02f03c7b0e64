package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"syllacard/internal/domain"
	"syllacard/internal/store"
)

// Engine owns one session over one deck snapshot: the card pool, the
// scheduling loop, the statistics, and save/resume. It is single-threaded;
// Run blocks on Presenter.ReadAnswer and nothing else.
type Engine struct {
	deck     *domain.Deck
	sessions store.SessionStore
	logger   *slog.Logger

	rng *rand.Rand
	now func() time.Time

	cards     []*domain.Card
	remaining []int
	studied   int
	startTime time.Time
	resumed   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects the random source used for word sampling, hidden-index
// selection, and card scheduling. Tests fix the seed for determinism.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock injects the time source used for the start timestamp and
// elapsed-time measurement.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine for one deck. Prepare must be called before Run.
func New(deck *domain.Deck, sessions store.SessionStore, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		deck:     deck,
		sessions: sessions,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Prepare builds the session's card pool.
//
// If a saved session exists for the deck it is restored verbatim (cards,
// remaining indices, studied count, start timestamp) and requestedCount is
// ignored. A corrupt saved session is surfaced as store.ErrCorruptSession,
// never silently treated as absent.
//
// Otherwise Prepare samples requestedCount distinct words uniformly without
// replacement and hides one uniformly random syllable per word. A
// requestedCount of zero or less selects the whole deck. Returns
// ErrInsufficientWords if requestedCount exceeds the deck size.
func (e *Engine) Prepare(requestedCount int) error {
	state, err := e.sessions.Load(e.deck.Name)
	switch {
	case err == nil:
		e.cards = state.Cards
		e.remaining = append([]int(nil), state.RemainingIndices...)
		e.studied = state.Studied
		e.startTime = state.StartTime
		e.resumed = true
		e.logger.Info("resumed session",
			"deck", e.deck.Name, "remaining", len(e.remaining), "studied", e.studied)
		return nil
	case errors.Is(err, store.ErrSessionNotFound):
		// No saved session; build a fresh one below.
	default:
		return err
	}

	if requestedCount > len(e.deck.Words) {
		return fmt.Errorf("%w: requested %d, deck has %d",
			ErrInsufficientWords, requestedCount, len(e.deck.Words))
	}
	if requestedCount <= 0 {
		requestedCount = len(e.deck.Words)
	}

	perm := e.rng.Perm(len(e.deck.Words))[:requestedCount]
	e.cards = make([]*domain.Card, 0, requestedCount)
	for _, wi := range perm {
		word := e.deck.Words[wi]
		card, err := domain.NewCard(word, e.rng.Intn(len(word.Syllables)))
		if err != nil {
			return fmt.Errorf("building card for %q: %w", word.Spelling, err)
		}
		e.cards = append(e.cards, card)
	}

	e.remaining = make([]int, len(e.cards))
	for i := range e.remaining {
		e.remaining[i] = i
	}
	e.studied = 0
	e.startTime = e.now()
	e.resumed = false

	e.logger.Info("prepared session", "deck", e.deck.Name, "cards", len(e.cards))
	return nil
}

// Run drives the session loop until every card is cleared or the user types
// the exit sentinel. On either terminal transition it computes the final
// statistics, folds them into the deck's cumulative stats, and returns the
// summary. Persisting the updated deck is the caller's responsibility.
func (e *Engine) Run(p Presenter) (*Summary, error) {
	if len(e.cards) == 0 {
		return nil, ErrNoCards
	}

	if e.resumed {
		p.ShowResumed(len(e.remaining))
	}

	for len(e.remaining) > 0 {
		slot := e.rng.Intn(len(e.remaining))
		idx := e.remaining[slot]
		card := e.cards[idx]

		p.ShowCard(card)

		raw, err := p.ReadAnswer()
		if err != nil {
			// Input is gone (EOF, closed terminal). Save so nothing is lost
			// and surface the error.
			if saveErr := e.sessions.Save(e.snapshot()); saveErr != nil {
				e.logger.Error("failed to save session after input error", "error", saveErr)
			}
			return nil, fmt.Errorf("reading answer: %w", err)
		}

		answer := strings.TrimSpace(raw)
		if strings.EqualFold(answer, ExitSentinel) {
			if err := e.sessions.Save(e.snapshot()); err != nil {
				return nil, fmt.Errorf("saving session: %w", err)
			}
			p.ShowSaved()
			return e.finish(StateExited), nil
		}

		// Every presentation counts, including repeats of the same card.
		e.studied++

		result := domain.EvaluateAnswer(card.HiddenSyllable(), answer)
		card.RecordFirstAttempt(result.Correct)

		if result.Correct {
			e.remaining = append(e.remaining[:slot], e.remaining[slot+1:]...)
			p.ShowCorrect(len(e.remaining))
			e.logger.Debug("correct answer",
				"word", card.Word.Spelling, "remaining", len(e.remaining))
		} else {
			p.ShowIncorrect(card.HiddenSyllable(), result.Diff)
			e.logger.Debug("incorrect answer",
				"word", card.Word.Spelling, "typed", answer)
		}
	}

	if err := e.sessions.Delete(e.deck.Name); err != nil {
		// The session is complete either way; losing the cleanup only means
		// a stale file, which the next Prepare would reject as mismatched.
		e.logger.Warn("failed to delete saved session", "deck", e.deck.Name, "error", err)
	}
	p.ShowCompleted()
	return e.finish(StateCompleted), nil
}

// finish computes the final statistics and applies them to the deck's
// cumulative counters. Called exactly once, on a terminal transition.
func (e *Engine) finish(state State) *Summary {
	sum := &Summary{
		State:      state,
		Elapsed:    e.now().Sub(e.startTime),
		Studied:    e.studied,
		Remembered: e.snapshot().Remembered(),
		TotalCards: len(e.cards),
	}

	e.deck.Stats.Apply(sum.Elapsed, sum.Studied, sum.Remembered)
	e.logger.Info("session finished",
		"deck", e.deck.Name, "state", string(state),
		"studied", sum.Studied, "remembered", sum.Remembered,
		"elapsed", sum.Elapsed.Round(time.Second).String())

	return sum
}

// snapshot assembles the persistable view of the engine's current state.
func (e *Engine) snapshot() *domain.SessionState {
	return &domain.SessionState{
		DeckName:         e.deck.Name,
		Cards:            e.cards,
		RemainingIndices: append([]int(nil), e.remaining...),
		Studied:          e.studied,
		StartTime:        e.startTime,
	}
}

// Cards returns the session's full original card set.
func (e *Engine) Cards() []*domain.Card { return e.cards }

// RemainingCount returns the number of cards not yet answered correctly.
func (e *Engine) RemainingCount() int { return len(e.remaining) }

// RemainingIndices returns a copy of the indices still to be cleared.
func (e *Engine) RemainingIndices() []int { return append([]int(nil), e.remaining...) }

// Studied returns the presentation counter.
func (e *Engine) Studied() int { return e.studied }

// StartTime returns the session's start timestamp.
func (e *Engine) StartTime() time.Time { return e.startTime }

// Resumed reports whether Prepare restored a saved session.
func (e *Engine) Resumed() bool { return e.resumed }
