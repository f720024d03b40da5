// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// PositionsDependencies defines the interface for position listings.
type PositionsDependencies interface {
	Positions(ctx context.Context) map[string]int
}

// PositionsHandler handles position distribution requests.
type PositionsHandler struct {
	deps PositionsDependencies
}

// NewPositionsHandler creates a new positions handler.
func NewPositionsHandler(deps PositionsDependencies) *PositionsHandler {
	return &PositionsHandler{deps: deps}
}

// HandleGetPositions handles GET /positions requests, returning the
// distinct positions with player counts.
func (h *PositionsHandler) HandleGetPositions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Positions(r.Context()))
}
