package domain

import (
	"errors"
	"strings"
	"testing"
)

func mustWord(t *testing.T, spelling string, syllables []string, ipa, japanese string) *Word {
	t.Helper()
	w, err := NewWord(spelling, syllables, ipa, japanese)
	if err != nil {
		t.Fatalf("NewWord(%q): %v", spelling, err)
	}
	return w
}

func TestNewCard(t *testing.T) {
	t.Parallel()

	word := mustWord(t, "banana", []string{"ba", "na", "na"}, "", "")

	card, err := NewCard(word, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.HiddenSyllable() != "na" {
		t.Errorf("Expected hidden syllable %q, got %q", "na", card.HiddenSyllable())
	}

	if card.FirstAttemptCorrect != nil {
		t.Error("FirstAttemptCorrect must start unset")
	}

	// Out-of-range hidden indices are rejected.
	if _, err := NewCard(word, 3); !errors.Is(err, ErrCardHiddenIndexRange) {
		t.Errorf("Expected ErrCardHiddenIndexRange, got %v", err)
	}
	if _, err := NewCard(word, -1); !errors.Is(err, ErrCardHiddenIndexRange) {
		t.Errorf("Expected ErrCardHiddenIndexRange, got %v", err)
	}
	if _, err := NewCard(nil, 0); !errors.Is(err, ErrCardWordNil) {
		t.Errorf("Expected ErrCardWordNil, got %v", err)
	}
}

func TestCardPrompt(t *testing.T) {
	t.Parallel()

	word := mustWord(t, "banana", []string{"ba", "na", "na"}, "", "")

	tests := []struct {
		hidden int
		want   string
	}{
		{0, "___-na-na"},
		{1, "ba-___-na"},
		{2, "ba-na-___"},
	}

	for _, tt := range tests {
		card, err := NewCard(word, tt.hidden)
		if err != nil {
			t.Fatalf("NewCard: %v", err)
		}
		if got := card.Prompt(); got != tt.want {
			t.Errorf("Prompt() with hidden %d = %q, want %q", tt.hidden, got, tt.want)
		}
	}
}

// The marker must not leak the hidden syllable's length.
func TestCardPromptMarkerLengthIndependent(t *testing.T) {
	t.Parallel()

	short := mustWord(t, "ab", []string{"a", "b"}, "", "")
	long := mustWord(t, "strengthss", []string{"strengths", "s"}, "", "")

	cardShort, _ := NewCard(short, 0)
	cardLong, _ := NewCard(long, 0)

	markerShort := strings.Split(cardShort.Prompt(), SyllableSeparator)[0]
	markerLong := strings.Split(cardLong.Prompt(), SyllableSeparator)[0]

	if markerShort != markerLong {
		t.Errorf("Marker differs by hidden length: %q vs %q", markerShort, markerLong)
	}
	if markerShort != HiddenMarker {
		t.Errorf("Expected marker %q, got %q", HiddenMarker, markerShort)
	}
}

func TestCardPromptSingleSyllable(t *testing.T) {
	t.Parallel()

	word := mustWord(t, "go", []string{"go"}, "", "")
	card, _ := NewCard(word, 0)

	if got := card.Prompt(); got != HiddenMarker {
		t.Errorf("Expected %q, got %q", HiddenMarker, got)
	}
}

func TestCardFullPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ipa      string
		japanese string
		want     string
	}{
		{"both", "ˈæp.əl", "りんご", "ap-___ [ˈæp.əl] りんご"},
		{"ipa only", "ˈæp.əl", "", "ap-___ [ˈæp.əl]"},
		{"japanese only", "", "りんご", "ap-___ りんご"},
		{"neither", "", "", "ap-___"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word := mustWord(t, "apple", []string{"ap", "ple"}, tt.ipa, tt.japanese)
			card, _ := NewCard(word, 1)
			if got := card.FullPrompt(); got != tt.want {
				t.Errorf("FullPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCardRecordFirstAttemptSetOnce(t *testing.T) {
	t.Parallel()

	word := mustWord(t, "apple", []string{"ap", "ple"}, "", "")
	card, _ := NewCard(word, 0)

	card.RecordFirstAttempt(false)
	if card.FirstAttemptCorrect == nil || *card.FirstAttemptCorrect {
		t.Fatal("Expected first attempt recorded as false")
	}

	// A later correct answer must not rewrite the first-attempt verdict.
	card.RecordFirstAttempt(true)
	if *card.FirstAttemptCorrect {
		t.Error("FirstAttemptCorrect changed after being set")
	}
}
