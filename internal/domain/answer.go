package domain

import "strings"

// DiffKind classifies one position of a character-level answer diff.
type DiffKind string

const (
	// DiffMatch means both strings carry the same character at this position.
	DiffMatch DiffKind = "match"

	// DiffMismatch means both strings carry a character here but they differ.
	DiffMismatch DiffKind = "mismatch"

	// DiffExtra means only the typed answer carries a character here
	// (the answer is too long).
	DiffExtra DiffKind = "extra"

	// DiffMissing means only the expected syllable carries a character here
	// (the answer is too short).
	DiffMissing DiffKind = "missing"
)

// DiffSegment is one position of the diff: the character to display and its
// classification. Match and missing positions carry the expected character in
// its original casing; mismatch and extra positions carry the typed character.
type DiffSegment struct {
	Char rune
	Kind DiffKind
}

// AnswerResult is the verdict for one evaluated answer.
type AnswerResult struct {
	Correct bool
	Diff    []DiffSegment
}

// EvaluateAnswer compares a typed answer against the expected hidden syllable.
//
// The typed input is whitespace-trimmed and compared case-insensitively. The
// diff walks both strings position by position up to the longer length; it is
// deliberately position-aligned rather than edit-distance aligned, so a single
// dropped or inserted character shifts every later position. That keeps the
// feedback trivially predictable at the cost of noisier output on insertions.
func EvaluateAnswer(expected, typed string) AnswerResult {
	typed = strings.TrimSpace(typed)

	exp := []rune(expected)
	got := []rune(typed)

	n := len(exp)
	if len(got) > n {
		n = len(got)
	}

	diff := make([]DiffSegment, 0, n)
	correct := len(exp) == len(got)

	for i := 0; i < n; i++ {
		switch {
		case i < len(exp) && i < len(got):
			if strings.EqualFold(string(exp[i]), string(got[i])) {
				diff = append(diff, DiffSegment{Char: exp[i], Kind: DiffMatch})
			} else {
				diff = append(diff, DiffSegment{Char: got[i], Kind: DiffMismatch})
				correct = false
			}
		case i < len(got):
			diff = append(diff, DiffSegment{Char: got[i], Kind: DiffExtra})
		default:
			diff = append(diff, DiffSegment{Char: exp[i], Kind: DiffMissing})
		}
	}

	return AnswerResult{Correct: correct, Diff: diff}
}
