// Package dataset builds the immutable player table the similarity
// engine queries. A Dataset is constructed once per process from a raw
// CSV table, carries its own cached normalization parameters, and is
// never mutated afterwards, so it is safe to share across concurrent
// queries without locking.
package dataset

import (
	"fmt"
	"math"
	"strconv"

	"github.com/courtmate/courtmate/internal/adapters/csv"
	"github.com/courtmate/courtmate/internal/domain/model"
	"github.com/courtmate/courtmate/internal/domain/normalize"
)

// Position assigned to rows with no usable position value.
const unknownPosition = "Unknown"

const minNumericColumns = 2

// Dataset is the fully materialized, validated player table.
type Dataset struct {
	schema  model.Schema
	players []model.PlayerRecord
	byID    map[string]int // player id -> index into players

	params     normalize.Params
	normalized [][]float64 // aligned with players, z-scored stats
	career     []float64   // aligned with players, sum of normalized stats

	dropped int // duplicate-id rows discarded during build
}

// Builder configures dataset construction.
type Builder struct {
	idColumn       string
	positionColumn string
}

// Option configures a Builder.
type Option func(*Builder)

// WithIDColumn sets the identifier column name.
func WithIDColumn(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.idColumn = name
		}
	}
}

// WithPositionColumn sets the categorical position column name.
func WithPositionColumn(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.positionColumn = name
		}
	}
}

// NewBuilder creates a Builder with the conventional NBA column names.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		idColumn:       "player",
		positionColumn: "pos",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates the raw table and assembles a Dataset.
//
// Column typing happens once here: every non-id, non-position column whose
// non-empty cells all parse as floats becomes a numeric feature column.
// Missing numeric cells are imputed with the column mean computed over the
// present values; the policy is uniform across all columns. Duplicate
// player ids keep the first row. Normalization parameters are fit once
// over the full (imputed) dataset and cached on the result.
func (b *Builder) Build(t *csv.Table) (*Dataset, error) {
	if t == nil || len(t.Records) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrEmptyDataset)
	}

	idIdx := t.Column(b.idColumn)
	if idIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingIDColumn, b.idColumn)
	}
	posIdx := t.Column(b.positionColumn) // may be -1; rows become Unknown

	// Decide the feature columns from the data, once.
	var statCols []string
	var statIdx []int
	for i, h := range t.Headers {
		if i == idIdx || i == posIdx {
			continue
		}
		if t.IsNumericColumn(i) {
			statCols = append(statCols, h)
			statIdx = append(statIdx, i)
		}
	}
	if len(statCols) < minNumericColumns {
		return nil, fmt.Errorf("%w: %d numeric columns, need at least %d",
			ErrEmptyDataset, len(statCols), minNumericColumns)
	}

	ds := &Dataset{
		schema: model.Schema{
			IDColumn:       b.idColumn,
			PositionColumn: b.positionColumn,
			StatColumns:    statCols,
		},
		byID: make(map[string]int),
	}

	for row, rec := range t.Records {
		id := rec[idIdx]
		if id == "" {
			ds.dropped++
			continue
		}
		if _, dup := ds.byID[id]; dup {
			ds.dropped++
			continue
		}

		pos := unknownPosition
		if posIdx >= 0 && rec[posIdx] != "" {
			pos = rec[posIdx]
		}

		stats := make([]float64, len(statIdx))
		for j, col := range statIdx {
			v := rec[col]
			if v == "" {
				stats[j] = math.NaN() // imputed below
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				// IsNumericColumn vetted the column; treat as missing.
				f = math.NaN()
			}
			stats[j] = f
		}

		ds.byID[id] = len(ds.players)
		ds.players = append(ds.players, model.PlayerRecord{
			ID:       id,
			Position: pos,
			Stats:    stats,
			Row:      row,
		})
	}

	if len(ds.players) == 0 {
		return nil, fmt.Errorf("%w: no usable rows", ErrEmptyDataset)
	}

	ds.imputeMissing()

	params, err := normalize.Fit(ds.columns())
	if err != nil {
		return nil, fmt.Errorf("fit normalization: %w", err)
	}
	ds.params = params

	ds.normalized = make([][]float64, len(ds.players))
	ds.career = make([]float64, len(ds.players))
	for i, p := range ds.players {
		ds.normalized[i] = params.Transform(p.Stats)
		var sum float64
		for _, v := range ds.normalized[i] {
			sum += v
		}
		ds.career[i] = sum
	}

	return ds, nil
}

// imputeMissing replaces NaN stats with the per-column mean of the
// present values. A column that is entirely missing falls back to 0.
func (ds *Dataset) imputeMissing() {
	for j := range ds.schema.StatColumns {
		var sum float64
		var n int
		for i := range ds.players {
			if v := ds.players[i].Stats[j]; !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		mean := 0.0
		if n > 0 {
			mean = sum / float64(n)
		}
		for i := range ds.players {
			if math.IsNaN(ds.players[i].Stats[j]) {
				ds.players[i].Stats[j] = mean
			}
		}
	}
}

// columns returns the raw stats as a column-major matrix for fitting.
func (ds *Dataset) columns() [][]float64 {
	cols := make([][]float64, ds.schema.NumFeatures())
	for j := range cols {
		col := make([]float64, len(ds.players))
		for i := range ds.players {
			col[i] = ds.players[i].Stats[j]
		}
		cols[j] = col
	}
	return cols
}

// Schema returns the column schema fixed at load time.
func (ds *Dataset) Schema() model.Schema { return ds.schema }

// Len returns the number of players.
func (ds *Dataset) Len() int { return len(ds.players) }

// Dropped returns how many rows were discarded during build.
func (ds *Dataset) Dropped() int { return ds.dropped }

// Player returns the record at index i in load order.
func (ds *Dataset) Player(i int) model.PlayerRecord { return ds.players[i] }

// Lookup returns the index of a player id.
func (ds *Dataset) Lookup(id string) (int, bool) {
	i, ok := ds.byID[id]
	return i, ok
}

// Vector returns the cached normalized feature vector for index i.
// Callers must not mutate the returned slice.
func (ds *Dataset) Vector(i int) []float64 { return ds.normalized[i] }

// CareerScore returns the cached career score (sum of normalized stats)
// for index i.
func (ds *Dataset) CareerScore(i int) float64 { return ds.career[i] }

// Params returns the cached normalization parameters.
func (ds *Dataset) Params() normalize.Params { return ds.params }

// Positions returns the distinct positions with player counts.
func (ds *Dataset) Positions() map[string]int {
	out := make(map[string]int)
	for _, p := range ds.players {
		out[p.Position]++
	}
	return out
}
