// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/courtmate/courtmate/internal/domain/types"
)

const defaultCareerLimit = 10

// CareerDependencies defines the interface for career-score rankings.
type CareerDependencies interface {
	TopCareer(ctx context.Context, n int) ([]types.CareerEntry, error)
	MaxCareerLimit() int
}

// CareerHandler handles career leaderboard requests.
type CareerHandler struct {
	deps CareerDependencies
}

// NewCareerHandler creates a new career handler.
func NewCareerHandler(deps CareerDependencies) *CareerHandler {
	return &CareerHandler{deps: deps}
}

// HandleGetCareer handles GET /career?limit=N requests.
func (h *CareerHandler) HandleGetCareer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := defaultCareerLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		n = parsed
	}
	if n > h.deps.MaxCareerLimit() {
		writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
		return
	}
	entries, err := h.deps.TopCareer(r.Context(), n)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
