// Package repository defines the player index interface and errors.
// The index backs the UI selection controls: ordered id listings, prefix
// search, and position counts.
package repository

import "context"

// Entry is one indexed player.
type Entry struct {
	PlayerID string
	Position string
}

// Index provides read access to the loaded player identifiers.
type Index interface {
	// Players returns ids in lexicographic order. A non-empty prefix
	// restricts the scan; limit <= 0 means no cap.
	Players(ctx context.Context, prefix string, limit int) []Entry

	// Get returns the indexed entry for a player id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, playerID string) (Entry, error)

	// Positions returns the distinct positions with player counts.
	Positions(ctx context.Context) map[string]int

	// Count returns the number of indexed players.
	Count(ctx context.Context) int
}
