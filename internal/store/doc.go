// Package store defines the persistence interfaces for decks and saved
// sessions, together with the sentinel errors all implementations share.
// The JSON file implementation lives in internal/platform/jsonfile.
package store
