package handlers

import (
	"net/http"

	"github.com/nexpay/nexpay-backend/internal/api/httpx"
	"github.com/nexpay/nexpay-backend/internal/services"
)

type StatsHandler struct {
	Stats *services.StatsService
}

func NewStatsHandler(ss *services.StatsService) *StatsHandler {
	return &StatsHandler{Stats: ss}
}

func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Stats.Overview())
}

func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Stats.Daily())
}

func (h *StatsHandler) Settlement(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Stats.Settlement())
}

func (h *StatsHandler) UserRatio(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Stats.UserRatio())
}
