package dataset

import "sort"

// CareerEntry pairs a player index with its career score.
type CareerEntry struct {
	Index int
	Score float64
}

// TopCareer returns the n highest career scores in descending order.
// Equal scores keep load order so the listing is deterministic. n larger
// than the dataset returns every player.
func (ds *Dataset) TopCareer(n int) []CareerEntry {
	if n <= 0 {
		return nil
	}
	entries := make([]CareerEntry, len(ds.players))
	for i := range ds.players {
		entries[i] = CareerEntry{Index: i, Score: ds.career[i]}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Score > entries[b].Score
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
