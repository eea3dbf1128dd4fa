// internal/api/router.go
package api

import (
	"net/http"

	"github.com/sca-trainer/backend/internal/auth"
)

// RegisterRoutes wires every handler onto the mux. All routes except
// registration require a valid bearer token.
func RegisterRoutes(mux *http.ServeMux, h *Handler, verifier auth.Verifier) {
	authed := RequireAuth(verifier, h.logger)

	// Users
	mux.HandleFunc("POST /users", h.registerUser)
	mux.HandleFunc("GET /users/me", authed(h.getCurrentUser))

	// Cases
	mux.HandleFunc("POST /cases/generate", authed(h.generateCase))
	mux.HandleFunc("POST /cases", authed(h.createCase))
	mux.HandleFunc("GET /cases", authed(h.listCases))
	mux.HandleFunc("GET /cases/{caseID}", authed(h.getCase))
	mux.HandleFunc("DELETE /cases/{caseID}", authed(h.deleteCase))

	// Consultations
	mux.HandleFunc("POST /cases/{caseID}/consultations", authed(h.scoreConsultation))
	mux.HandleFunc("GET /consultations", authed(h.listConsultations))
	mux.HandleFunc("GET /consultations/{consultationID}", authed(h.getConsultation))
	mux.HandleFunc("POST /consultations/{consultationID}/share", authed(h.shareConsultation))
	mux.HandleFunc("DELETE /consultations/{consultationID}/share", authed(h.unshareConsultation))

	// Shared feed and peer comments
	mux.HandleFunc("GET /shared", authed(h.listShared))
	mux.HandleFunc("POST /consultations/{consultationID}/comments", authed(h.addComment))
	mux.HandleFunc("GET /consultations/{consultationID}/comments", authed(h.listComments))

	// Admin
	mux.HandleFunc("GET /admin/stats", authed(h.getStats))
	mux.HandleFunc("GET /admin/llm-health", authed(h.getLLMHealth))
}
