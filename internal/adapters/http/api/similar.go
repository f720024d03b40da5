// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/courtmate/courtmate/internal/domain/types"
)

// SimilarDependencies defines the interface for similarity queries.
type SimilarDependencies interface {
	FindSimilar(ctx context.Context, playerID string, k int, samePositionOnly bool, metric string) ([]types.SimilarEntry, error)
	MaxK() int
}

// SimilarHandler handles find-similar requests.
type SimilarHandler struct {
	deps SimilarDependencies
}

// NewSimilarHandler creates a new similar handler.
func NewSimilarHandler(deps SimilarDependencies) *SimilarHandler {
	return &SimilarHandler{deps: deps}
}

// HandleGetSimilar handles GET /similar/{player_id} requests.
// Query parameters: k (1..max, default max), same_position (bool,
// default false), metric (optional override).
func (h *SimilarHandler) HandleGetSimilar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	playerID := strings.TrimPrefix(r.URL.Path, "/similar/")
	if playerID == "" || strings.Contains(playerID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	k := h.deps.MaxK()
	if kStr := r.URL.Query().Get("k"); kStr != "" {
		n, err := strconv.Atoi(kStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		k = n // range checked by the engine
	}

	samePosition := false
	if spStr := r.URL.Query().Get("same_position"); spStr != "" {
		sp, err := strconv.ParseBool(spStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		samePosition = sp
	}

	entries, err := h.deps.FindSimilar(r.Context(), playerID, k, samePosition, r.URL.Query().Get("metric"))
	if err != nil {
		writeQueryError(w, err)
		return
	}
	// A short or empty result is valid, not an error.
	if entries == nil {
		entries = []types.SimilarEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
