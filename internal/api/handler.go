// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sca-trainer/backend/internal/auth"
	"github.com/sca-trainer/backend/internal/llm"
	"github.com/sca-trainer/backend/internal/service"
	"github.com/sca-trainer/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store         *store.SQLiteStore
	cases         *service.CaseService
	consultations *service.ConsultationService
	authClient    *auth.Client
	pinger        Pinger
	logger        *slog.Logger
}

// Pinger is the LLM reachability probe used by the admin health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	s *store.SQLiteStore,
	cases *service.CaseService,
	consultations *service.ConsultationService,
	authClient *auth.Client,
	pinger Pinger,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		store:         s,
		cases:         cases,
		consultations: consultations,
		authClient:    authClient,
		pinger:        pinger,
		logger:        logger,
	}
}

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (and writes a
// 400) on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// decodeAndValidate decodes the request body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// handleLLMError maps a generation or scoring failure onto an HTTP status.
// Provider failures and out-of-contract model output are both upstream
// faults, so they surface as 502; the client request itself was fine.
func (h *Handler) handleLLMError(w http.ResponseWriter, err error) {
	var perr *llm.ProviderError
	if errors.As(err, &perr) {
		respondError(w, http.StatusBadGateway, "language model unavailable")
		return
	}
	respondError(w, http.StatusBadGateway, "language model returned an unusable response")
}
