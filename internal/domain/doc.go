// Package domain contains the core entities and algorithms of the drill
// tool: words with their syllable breakdowns, cards, decks, session state,
// and the answer evaluator. It has no dependency on storage or the CLI.
package domain
