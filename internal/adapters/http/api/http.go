// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/courtmate/courtmate/internal/adapters/repository"
	service "github.com/courtmate/courtmate/internal/app"
	"github.com/courtmate/courtmate/internal/domain/similarity"
	"github.com/courtmate/courtmate/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// FindSimilar answers a ranked similarity query.
	FindSimilar(ctx context.Context, playerID string, k int, samePositionOnly bool, metric string) ([]types.SimilarEntry, error)

	// Read operations expose the selection lists and leaderboards.
	Players(ctx context.Context, prefix string, limit int) []repository.Entry
	Positions(ctx context.Context) map[string]int
	TopCareer(ctx context.Context, n int) ([]types.CareerEntry, error)

	// Query bounds for request validation.
	MaxK() int
	MaxCareerLimit() int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	similarHandler   *SimilarHandler
	playersHandler   *PlayersHandler
	positionsHandler *PositionsHandler
	careerHandler    *CareerHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		similarHandler:   NewSimilarHandler(deps),
		playersHandler:   NewPlayersHandler(deps),
		positionsHandler: NewPositionsHandler(deps),
		careerHandler:    NewCareerHandler(deps),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandleGetPlayers, "players"))
	mux.HandleFunc("/positions", MetricsMiddleware(s.positionsHandler.HandleGetPositions, "positions"))
	mux.HandleFunc("/career", MetricsMiddleware(s.careerHandler.HandleGetCareer, "career"))
	mux.HandleFunc("/similar/", MetricsMiddleware(s.similarHandler.HandleGetSimilar, "similar"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeQueryError translates engine errors to HTTP statuses. All query
// errors are user errors except the fallthrough case.
func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, similarity.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, similarity.ErrInvalidK),
		errors.Is(err, similarity.ErrUnknownMetric),
		errors.Is(err, service.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
