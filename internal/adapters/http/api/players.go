// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	repository "github.com/courtmate/courtmate/internal/adapters/repository"
)

// Cap on a single players listing; the full list is available by paging
// with prefix queries.
const defaultPlayersLimit = 1000

// PlayersDependencies defines the interface for player listings.
type PlayersDependencies interface {
	Players(ctx context.Context, prefix string, limit int) []repository.Entry
}

// PlayersHandler handles player listing requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// playerResponse mirrors the wire shape of one listed player.
type playerResponse struct {
	PlayerID string `json:"player_id"`
	Position string `json:"position"`
}

// HandleGetPlayers handles GET /players?prefix=&limit= requests.
// Ids come back in lexicographic order for stable selection controls.
func (h *PlayersHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	limit := defaultPlayersLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if n < limit {
			limit = n
		}
	}

	entries := h.deps.Players(r.Context(), r.URL.Query().Get("prefix"), limit)
	out := make([]playerResponse, len(entries))
	for i, e := range entries {
		out[i] = playerResponse{PlayerID: e.PlayerID, Position: e.Position}
	}
	writeJSON(w, http.StatusOK, out)
}
