// Package syllable provides the default syllable source: a pure heuristic
// splitter used at deck-import time. Any SplitFunc can be injected in its
// place; the only contract is that the returned substrings are non-empty
// and concatenate back to the input.
package syllable

import (
	"strings"
	"unicode"
)

// SplitFunc maps a word to its ordered syllable substrings. Implementations
// must be pure and must preserve the input exactly when the parts are
// concatenated.
type SplitFunc func(word string) []string

// Split breaks a word into approximate syllables by scanning for vowel
// groups: a boundary is placed after a vowel that ends a vowel run, provided
// the accumulated chunk has at least two characters. Anything left over is
// glued onto the last chunk. Words that produce no boundary come back whole.
//
// This is a rough heuristic and makes no claim to phonetic accuracy; decks
// that need precise breakdowns use explicit hyphens in the import file.
func Split(word string) []string {
	if word == "" {
		return nil
	}

	runes := []rune(word)

	var parts []string
	start := 0
	for i, r := range runes {
		atEnd := i == len(runes)-1
		if isVowel(r) && (atEnd || !isVowel(runes[i+1])) && i-start+1 >= 2 {
			parts = append(parts, string(runes[start:i+1]))
			start = i + 1
		}
	}

	if start < len(runes) {
		rest := string(runes[start:])
		if len(parts) > 0 {
			parts[len(parts)-1] += rest
		} else {
			parts = append(parts, rest)
		}
	}

	return parts
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouy", unicode.ToLower(r))
}
