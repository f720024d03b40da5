// Package types contains common types used across the application.
package types

// SimilarEntry is one ranked row of a similarity query result.
type SimilarEntry struct {
	Rank       int                `json:"rank"`
	PlayerID   string             `json:"player_id"`
	Position   string             `json:"position"`
	Distance   float64            `json:"distance"`
	Similarity float64            `json:"similarity_pct"`
	KeyStats   map[string]float64 `json:"key_stats,omitempty"`
}

// CareerEntry is one row of the career-score leaderboard.
type CareerEntry struct {
	Rank        int     `json:"rank"`
	PlayerID    string  `json:"player_id"`
	Position    string  `json:"position"`
	CareerScore float64 `json:"career_score"`
}
