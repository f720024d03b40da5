// Package model contains domain models passed between layers.
package model

// PlayerRecord is one row of the career-stats table after validation.
// Records are immutable once the dataset is built.
type PlayerRecord struct {
	ID       string    // unique player identifier (the id column value)
	Position string    // categorical position tag, "Unknown" when absent
	Stats    []float64 // raw numeric stats, aligned with Schema.StatColumns
	Row      int       // original CSV row order, used for stable tie-breaks
}

// Schema describes the columns the engine operates on.
// It is fixed at load time; later stages never do ad hoc column lookups.
type Schema struct {
	IDColumn       string
	PositionColumn string
	StatColumns    []string // numeric feature columns, >= 2
}

// NumFeatures returns the number of numeric feature columns.
func (s Schema) NumFeatures() int { return len(s.StatColumns) }

// StatIndex returns the position of a stat column in Stats, or -1.
func (s Schema) StatIndex(name string) int {
	for i, c := range s.StatColumns {
		if c == name {
			return i
		}
	}
	return -1
}
