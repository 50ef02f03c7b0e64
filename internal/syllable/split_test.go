package syllable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"banana", []string{"ba", "na", "na"}},
		{"paper", []string{"pa", "per"}},
		{"syllable", []string{"sy", "lla", "ble"}},
		{"apple", []string{"apple"}},
		{"idea", []string{"idea"}},
		{"go", []string{"go"}},
		{"a", []string{"a"}},
		{"rhythm", []string{"rhythm"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.word))
		})
	}
}

// The contract every consumer relies on: non-empty parts that concatenate
// back to the input.
func TestSplitReconstructs(t *testing.T) {
	words := []string{"banana", "apple", "syllable", "paper", "go", "a", "Tokyo", "REMEMBER"}

	for _, w := range words {
		parts := Split(w)
		assert.NotEmpty(t, parts, w)
		for _, p := range parts {
			assert.NotEmpty(t, p, w)
		}
		assert.Equal(t, w, strings.Join(parts, ""), "parts must reconstruct %q", w)
	}
}

func TestSplitEmpty(t *testing.T) {
	assert.Nil(t, Split(""))
}
