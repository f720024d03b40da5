// Package similarity ranks players by closeness of their normalized
// career statistics.
//
// The engine is a pure function over an immutable dataset: it reads the
// cached normalized vectors, computes one distance per candidate, sorts,
// and truncates. Euclidean distance over all normalized dimensions is the
// default; cosine distance can be selected instead. Queries never refit
// normalization, so distances stay comparable across filters.
package similarity

import (
	"context"
	"fmt"
	"sort"

	"github.com/courtmate/courtmate/internal/domain/dataset"
)

// Query bounds. k is capped at 5 to match the selection control the tool
// has always offered.
const (
	MinK = 1
	MaxK = 5
)

// Match is one ranked candidate: a dataset index plus its distance to the
// query player.
type Match struct {
	Index    int
	Distance float64
}

// Engine answers find-similar queries against one dataset.
type Engine struct {
	ds     *dataset.Dataset
	metric Metric
	maxK   int
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMetric selects the distance metric.
func WithMetric(m Metric) Option {
	return func(e *Engine) {
		if m != "" {
			e.metric = m
		}
	}
}

// WithMaxK overrides the upper bound on k.
func WithMaxK(k int) Option {
	return func(e *Engine) {
		if k >= MinK {
			e.maxK = k
		}
	}
}

// New creates an engine over the given dataset.
func New(ds *dataset.Dataset, opts ...Option) *Engine {
	e := &Engine{
		ds:     ds,
		metric: Euclidean,
		maxK:   MaxK,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Metric returns the engine's configured metric.
func (e *Engine) Metric() Metric { return e.metric }

// FindSimilar returns up to k players nearest to playerID, ascending by
// distance. Ties keep original dataset order, so identical inputs always
// produce identically ordered results. With samePositionOnly set, only
// players sharing the query player's position are candidates; a filter
// that leaves fewer than k candidates returns what exists, down to an
// empty result, without error.
func (e *Engine) FindSimilar(ctx context.Context, playerID string, k int, samePositionOnly bool) ([]Match, error) {
	return e.FindSimilarWith(ctx, playerID, k, samePositionOnly, e.metric)
}

// FindSimilarWith is FindSimilar with a per-query metric override.
func (e *Engine) FindSimilarWith(_ context.Context, playerID string, k int, samePositionOnly bool, metric Metric) ([]Match, error) {
	if k < MinK || k > e.maxK {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidK, k, MinK, e.maxK)
	}
	qi, ok := e.ds.Lookup(playerID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, playerID)
	}

	query := e.ds.Player(qi)
	qvec := e.ds.Vector(qi)

	matches := make([]Match, 0, e.ds.Len()-1)
	for i := 0; i < e.ds.Len(); i++ {
		if i == qi {
			continue
		}
		if samePositionOnly && e.ds.Player(i).Position != query.Position {
			continue
		}
		matches = append(matches, Match{
			Index:    i,
			Distance: metric.distance(qvec, e.ds.Vector(i)),
		})
	}

	// Stable over load order: candidates were appended in dataset order,
	// so equal distances resolve to the earlier CSV row.
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Distance < matches[b].Distance
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}
