// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	csvreader "github.com/courtmate/courtmate/internal/adapters/csv"
	repository "github.com/courtmate/courtmate/internal/adapters/repository"
	"github.com/courtmate/courtmate/internal/domain/dataset"
	"github.com/courtmate/courtmate/internal/domain/similarity"
	"github.com/courtmate/courtmate/internal/domain/types"
	"github.com/courtmate/courtmate/pkg/logger"
	"github.com/courtmate/courtmate/pkg/metrics"
)

// Service owns the loaded dataset and answers similarity queries.
// After Start returns, the dataset, its cached normalization parameters,
// and the index are immutable; query methods are safe for concurrent use.
type Service struct {
	mu sync.RWMutex

	// Core components
	ds     *dataset.Dataset
	engine *similarity.Engine
	index  repository.Index

	// Configuration
	csvPath        string
	idColumn       string
	positionColumn string
	metric         similarity.Metric
	maxK           int
	maxCareerLimit int
	keyStats       []string

	// State
	started  bool
	loadedAt time.Time
	loadMs   float64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCSVPath sets the dataset file path.
func WithCSVPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.csvPath = path
		}
	}
}

// WithColumns sets the identifier and position column names.
func WithColumns(id, position string) Option {
	return func(s *Service) {
		if id != "" {
			s.idColumn = id
		}
		if position != "" {
			s.positionColumn = position
		}
	}
}

// WithMetric sets the default distance metric.
func WithMetric(m similarity.Metric) Option {
	return func(s *Service) {
		if m != "" {
			s.metric = m
		}
	}
}

// WithMaxK caps k for similarity queries.
func WithMaxK(k int) Option {
	return func(s *Service) {
		if k >= 1 {
			s.maxK = k
		}
	}
}

// WithMaxCareerLimit caps the career leaderboard size.
func WithMaxCareerLimit(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.maxCareerLimit = n
		}
	}
}

// WithKeyStats sets the raw stat columns echoed in query results.
func WithKeyStats(cols []string) Option {
	return func(s *Service) {
		s.keyStats = cols
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		csvPath:        "NBA_career_stats.csv",
		idColumn:       "player",
		positionColumn: "pos",
		metric:         similarity.Euclidean,
		maxK:           similarity.MaxK,
		maxCareerLimit: 100,
		keyStats:       []string{"pts", "reb", "ast"},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads and validates the dataset, fits normalization once, and
// builds the query engine and player index. Load failures are fatal:
// the service refuses to start on an unusable dataset.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "loading dataset", logger.String("path", s.csvPath))
	begin := time.Now()

	table, err := csvreader.NewReader(s.csvPath).Read()
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	ds, err := dataset.NewBuilder(
		dataset.WithIDColumn(s.idColumn),
		dataset.WithPositionColumn(s.positionColumn),
	).Build(table)
	if err != nil {
		return fmt.Errorf("build dataset: %w", err)
	}
	s.ds = ds

	if ds.Dropped() > 0 {
		s.logger.Warn(ctx, "dropped rows during load",
			logger.Int("rows", ds.Dropped()),
		)
	}

	s.engine = similarity.New(ds,
		similarity.WithMetric(s.metric),
		similarity.WithMaxK(s.maxK),
	)

	entries := make([]repository.Entry, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		p := ds.Player(i)
		entries[i] = repository.Entry{PlayerID: p.ID, Position: p.Position}
	}
	s.index = repository.NewBTreeIndex(ctx, entries)

	s.loadedAt = time.Now()
	s.loadMs = float64(time.Since(begin).Milliseconds())
	s.started = true

	metrics.UpdateDatasetPlayers(ds.Len())
	metrics.UpdateDatasetFeatures(ds.Schema().NumFeatures())
	metrics.UpdateDatasetRowsDropped(ds.Dropped())
	metrics.UpdateDatasetLoadDuration(s.loadMs)

	s.logger.Info(ctx, "dataset loaded",
		logger.Int("players", ds.Len()),
		logger.Int("features", ds.Schema().NumFeatures()),
		logger.String("metric", string(s.metric)),
		logger.Float64("loadMs", s.loadMs),
	)
	return nil
}

// Stop releases the loaded dataset.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.ds = nil
	s.engine = nil
	s.index = nil
	s.started = false
}

// FindSimilar answers a find-similar query. metricOverride may be empty
// to use the configured default.
func (s *Service) FindSimilar(ctx context.Context, playerID string, k int, samePositionOnly bool, metricOverride string) ([]types.SimilarEntry, error) {
	metric := s.metric
	if metricOverride != "" {
		m, err := similarity.ParseMetric(metricOverride)
		if err != nil {
			metrics.RecordQueryError("bad_metric")
			return nil, err
		}
		metric = m
	}

	begin := time.Now()
	matches, err := s.engine.FindSimilarWith(ctx, playerID, k, samePositionOnly, metric)
	if err != nil {
		metrics.RecordQueryError(queryErrorKind(err))
		return nil, err
	}
	metrics.RecordQuery(string(metric), samePositionOnly)
	metrics.RecordQueryDuration(float64(time.Since(begin).Microseconds()) / 1e3)

	out := make([]types.SimilarEntry, len(matches))
	for i, m := range matches {
		p := s.ds.Player(m.Index)
		out[i] = types.SimilarEntry{
			Rank:       i + 1,
			PlayerID:   p.ID,
			Position:   p.Position,
			Distance:   m.Distance,
			Similarity: similarity.SimilarityPct(m.Distance),
			KeyStats:   s.keyStatsFor(m.Index),
		}
	}

	s.logger.Debug(ctx, "similar query served",
		logger.String("player", playerID),
		logger.Int("k", k),
		logger.Bool("samePosition", samePositionOnly),
		logger.String("metric", string(metric)),
		logger.Int("results", len(out)),
	)
	return out, nil
}

// keyStatsFor returns the configured raw display stats for a player.
// Columns the dataset does not have are skipped.
func (s *Service) keyStatsFor(idx int) map[string]float64 {
	if len(s.keyStats) == 0 {
		return nil
	}
	schema := s.ds.Schema()
	p := s.ds.Player(idx)
	out := make(map[string]float64)
	for _, col := range s.keyStats {
		if j := schema.StatIndex(col); j >= 0 {
			out[col] = p.Stats[j]
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// queryErrorKind maps engine errors to a metrics label.
func queryErrorKind(err error) string {
	switch {
	case errors.Is(err, similarity.ErrNotFound):
		return "not_found"
	case errors.Is(err, similarity.ErrInvalidK):
		return "invalid_k"
	case errors.Is(err, similarity.ErrUnknownMetric):
		return "bad_metric"
	default:
		return "internal"
	}
}

// Players returns ordered player ids, optionally filtered by prefix.
func (s *Service) Players(ctx context.Context, prefix string, limit int) []repository.Entry {
	return s.index.Players(ctx, prefix, limit)
}

// Positions returns distinct positions with player counts.
func (s *Service) Positions(ctx context.Context) map[string]int {
	return s.index.Positions(ctx)
}

// TopCareer returns the top-n players by career score.
func (s *Service) TopCareer(_ context.Context, n int) ([]types.CareerEntry, error) {
	if n < 1 || n > s.maxCareerLimit {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidLimit, n, s.maxCareerLimit)
	}
	entries := s.ds.TopCareer(n)
	out := make([]types.CareerEntry, len(entries))
	for i, e := range entries {
		p := s.ds.Player(e.Index)
		out[i] = types.CareerEntry{
			Rank:        i + 1,
			PlayerID:    p.ID,
			Position:    p.Position,
			CareerScore: e.Score,
		}
	}
	return out, nil
}

// MaxK returns the configured cap on k.
func (s *Service) MaxK() int { return s.maxK }

// MaxCareerLimit returns the configured cap on the career leaderboard.
func (s *Service) MaxCareerLimit() int { return s.maxCareerLimit }

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
		"metric":  string(s.metric),
		"maxK":    s.maxK,
	}
	if s.started {
		stats["totalPlayers"] = s.ds.Len()
		stats["featureColumns"] = s.ds.Schema().StatColumns
		stats["positions"] = s.ds.Positions()
		stats["rowsDropped"] = s.ds.Dropped()
		stats["loadedAt"] = s.loadedAt
		stats["loadMs"] = s.loadMs
	}
	return stats
}
