package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func testState(t *testing.T) *SessionState {
	t.Helper()

	apple := mustWord(t, "apple", []string{"ap", "ple"}, "", "")
	banana := mustWord(t, "banana", []string{"ba", "na", "na"}, "", "")

	c1, _ := NewCard(apple, 1)
	c2, _ := NewCard(banana, 0)

	return &SessionState{
		DeckName:         "fruit",
		Cards:            []*Card{c1, c2},
		RemainingIndices: []int{0, 1},
		StartTime:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSessionStateValidate(t *testing.T) {
	t.Parallel()

	if err := testState(t).Validate(); err != nil {
		t.Fatalf("Expected valid state, got %v", err)
	}

	s := testState(t)
	s.DeckName = ""
	if err := s.Validate(); !errors.Is(err, ErrSessionDeckNameEmpty) {
		t.Errorf("Expected ErrSessionDeckNameEmpty, got %v", err)
	}

	s = testState(t)
	s.Cards = nil
	if err := s.Validate(); !errors.Is(err, ErrSessionNoCards) {
		t.Errorf("Expected ErrSessionNoCards, got %v", err)
	}

	s = testState(t)
	s.RemainingIndices = []int{0, 2}
	if err := s.Validate(); !errors.Is(err, ErrSessionIndexRange) {
		t.Errorf("Expected ErrSessionIndexRange, got %v", err)
	}

	s = testState(t)
	s.Studied = -1
	if err := s.Validate(); !errors.Is(err, ErrSessionStudiedNegative) {
		t.Errorf("Expected ErrSessionStudiedNegative, got %v", err)
	}
}

func TestSessionStateRemembered(t *testing.T) {
	t.Parallel()

	s := testState(t)
	if s.Remembered() != 0 {
		t.Errorf("Expected 0 remembered before any attempt, got %d", s.Remembered())
	}

	s.Cards[0].RecordFirstAttempt(true)
	s.Cards[1].RecordFirstAttempt(false)
	if s.Remembered() != 1 {
		t.Errorf("Expected 1 remembered, got %d", s.Remembered())
	}
}

// The unset first-attempt state must survive a JSON round trip as null.
func TestSessionStateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	s := testState(t)
	s.Cards[0].RecordFirstAttempt(false)
	s.Studied = 3

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back SessionState
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if back.Cards[1].FirstAttemptCorrect != nil {
		t.Error("Unset first attempt must come back as nil")
	}
	if back.Cards[0].FirstAttemptCorrect == nil || *back.Cards[0].FirstAttemptCorrect {
		t.Error("Recorded first attempt must survive the round trip")
	}
	if back.Studied != 3 || back.DeckName != "fruit" {
		t.Errorf("State fields lost in round trip: %+v", back)
	}
}
