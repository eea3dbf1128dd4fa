package api

import (
	"context"
	"net/http"
	"time"
)

// ── Response types ──────────────────────────────────────────────────────────

type StatsResponse struct {
	Users         int `json:"users" example:"12"`
	Cases         int `json:"cases" example:"48"`
	Consultations int `json:"consultations" example:"97"`
	Shared        int `json:"shared" example:"15"`
}

type LLMHealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStats returns aggregate usage counts.
// @Summary      Usage statistics
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /admin/stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats()
	if err != nil {
		h.logger.Error("failed to load stats", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, StatsResponse{
		Users:         stats.Users,
		Cases:         stats.Cases,
		Consultations: stats.Consultations,
		Shared:        stats.Shared,
	})
}

// getLLMHealth probes the configured LLM endpoint.
// @Summary      LLM reachability
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  LLMHealthResponse
// @Failure      502  {object}  LLMHealthResponse
// @Router       /admin/llm-health [get]
func (h *Handler) getLLMHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("llm unreachable", "error", err)
		respondJSON(w, http.StatusBadGateway, LLMHealthResponse{Status: "unreachable"})
		return
	}

	respondJSON(w, http.StatusOK, LLMHealthResponse{Status: "ok"})
}
