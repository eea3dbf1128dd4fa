package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/sca-trainer/backend/internal/domain/consultation"
	"github.com/sca-trainer/backend/internal/scoring"
	"github.com/sca-trainer/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type ScoreConsultationRequest struct {
	Transcript string `json:"transcript" example:"Doctor: What brings you in today?\nPatient: I've had this headache..."`
}

func (r *ScoreConsultationRequest) Validate() error {
	// Whitespace-only transcripts are rejected by the scorer itself so the
	// check lives in one place; only structural absence is caught here.
	if r.Transcript == "" {
		return errors.New("transcript is required")
	}
	return nil
}

type DomainScoreResponse struct {
	Score         int    `json:"score" example:"4"`
	Justification string `json:"justification,omitempty" example:"Systematic history, explored ideas and concerns."`
}

type ConsultationResponse struct {
	ID        string                         `json:"id" example:"b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e"`
	CaseID    string                         `json:"case_id" example:"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"`
	UserID    string                         `json:"user_id"`
	Scores    map[string]DomainScoreResponse `json:"scores"`
	Overall   float64                        `json:"overall" example:"4.0"`
	IsShared  bool                           `json:"is_shared"`
	CreatedAt time.Time                      `json:"created_at"`
}

func toConsultationResponse(c *consultation.Consultation) ConsultationResponse {
	scores := make(map[string]DomainScoreResponse, len(c.Result.Domains))
	for did, ds := range c.Result.Domains {
		scores[did] = DomainScoreResponse{Score: ds.Score, Justification: ds.Justification}
	}
	return ConsultationResponse{
		ID:        c.ID,
		CaseID:    c.CaseID,
		UserID:    c.UserID,
		Scores:    scores,
		Overall:   c.Result.Overall,
		IsShared:  c.IsShared,
		CreatedAt: c.CreatedAt,
	}
}

type AddCommentRequest struct {
	Comment string `json:"comment" example:"Good ICE exploration, but the plan needed safety-netting."`
}

func (r *AddCommentRequest) Validate() error {
	if r.Comment == "" {
		return errors.New("comment is required")
	}
	if len(r.Comment) > consultation.MaxCommentLength {
		return errors.New("comment is too long")
	}
	return nil
}

type CommentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// scoreConsultation scores a transcript against a stored case.
// @Summary      Score a consultation transcript
// @Description  Runs one LLM round trip against the fixed rubric and persists the scored consultation. Nothing is stored on failure.
// @Tags         Consultations
// @Accept       json
// @Produce      json
// @Param        caseID  path      string                    true  "Case ID"
// @Param        body    body      ScoreConsultationRequest  true  "Transcript to score"
// @Success      201     {object}  ConsultationResponse
// @Failure      400     {object}  map[string]string  "empty transcript"
// @Failure      404     {object}  map[string]string  "case not found"
// @Failure      502     {object}  map[string]string  "LLM unavailable or returned unusable scores"
// @Router       /cases/{caseID}/consultations [post]
func (h *Handler) scoreConsultation(w http.ResponseWriter, r *http.Request) {
	var req ScoreConsultationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.consultations.Score(r.Context(), UserID(r), r.PathValue("caseID"), req.Transcript)
	if err != nil {
		var scoreErr *scoring.ScoringError
		switch {
		case errors.Is(err, scoring.ErrEmptyTranscript):
			respondError(w, http.StatusBadRequest, "transcript is empty")
		case errors.As(err, &scoreErr):
			h.handleLLMError(w, err)
		default:
			h.handleStoreError(w, err, "case")
		}
		return
	}

	respondJSON(w, http.StatusCreated, toConsultationResponse(c))
}

// listConsultations returns the caller's scoring history.
// @Summary      List own consultations
// @Tags         Consultations
// @Produce      json
// @Success      200  {array}  ConsultationResponse
// @Router       /consultations [get]
func (h *Handler) listConsultations(w http.ResponseWriter, r *http.Request) {
	history, err := h.consultations.History(UserID(r))
	if err != nil {
		h.logger.Error("failed to list consultations", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	responses := make([]ConsultationResponse, len(history))
	for i, c := range history {
		responses[i] = toConsultationResponse(c)
	}
	respondJSON(w, http.StatusOK, responses)
}

// getConsultation returns one consultation. Private consultations are only
// visible to their owner.
// @Summary      Get a consultation
// @Tags         Consultations
// @Produce      json
// @Param        consultationID  path      string  true  "Consultation ID"
// @Success      200             {object}  ConsultationResponse
// @Failure      404             {object}  map[string]string
// @Router       /consultations/{consultationID} [get]
func (h *Handler) getConsultation(w http.ResponseWriter, r *http.Request) {
	c, err := h.consultations.Get(r.PathValue("consultationID"))
	if h.handleStoreError(w, err, "consultation") {
		return
	}

	if !c.IsShared && c.UserID != UserID(r) {
		// Hidden rather than forbidden: existence is not disclosed.
		respondError(w, http.StatusNotFound, "consultation not found")
		return
	}

	respondJSON(w, http.StatusOK, toConsultationResponse(c))
}

// shareConsultation makes a consultation visible in the shared feed.
// @Summary      Share a consultation
// @Tags         Consultations
// @Param        consultationID  path  string  true  "Consultation ID"
// @Success      204
// @Failure      403  {object}  map[string]string  "not the owner"
// @Failure      404  {object}  map[string]string
// @Router       /consultations/{consultationID}/share [post]
func (h *Handler) shareConsultation(w http.ResponseWriter, r *http.Request) {
	h.setShared(w, r, true)
}

// unshareConsultation removes a consultation from the shared feed.
// @Summary      Unshare a consultation
// @Tags         Consultations
// @Param        consultationID  path  string  true  "Consultation ID"
// @Success      204
// @Failure      403  {object}  map[string]string  "not the owner"
// @Failure      404  {object}  map[string]string
// @Router       /consultations/{consultationID}/share [delete]
func (h *Handler) unshareConsultation(w http.ResponseWriter, r *http.Request) {
	h.setShared(w, r, false)
}

func (h *Handler) setShared(w http.ResponseWriter, r *http.Request, shared bool) {
	err := h.consultations.SetShared(r.PathValue("consultationID"), UserID(r), shared)
	if errors.Is(err, service.ErrNotOwner) {
		respondError(w, http.StatusForbidden, "only the owner can change sharing")
		return
	}
	if h.handleStoreError(w, err, "consultation") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listShared returns all consultations shared for peer review.
// @Summary      List shared consultations
// @Tags         Shared
// @Produce      json
// @Success      200  {array}  ConsultationResponse
// @Router       /shared [get]
func (h *Handler) listShared(w http.ResponseWriter, r *http.Request) {
	feed, err := h.consultations.SharedFeed()
	if err != nil {
		h.logger.Error("failed to list shared consultations", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	responses := make([]ConsultationResponse, len(feed))
	for i, c := range feed {
		responses[i] = toConsultationResponse(c)
	}
	respondJSON(w, http.StatusOK, responses)
}

// addComment leaves a peer comment on a shared consultation.
// @Summary      Comment on a shared consultation
// @Tags         Shared
// @Accept       json
// @Produce      json
// @Param        consultationID  path      string             true  "Consultation ID"
// @Param        body            body      AddCommentRequest  true  "Comment"
// @Success      201             {object}  CommentResponse
// @Failure      400             {object}  map[string]string
// @Failure      403             {object}  map[string]string  "consultation not shared"
// @Failure      404             {object}  map[string]string
// @Router       /consultations/{consultationID}/comments [post]
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var req AddCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pc, err := h.consultations.AddComment(r.PathValue("consultationID"), UserID(r), req.Comment)
	if errors.Is(err, service.ErrNotShared) {
		respondError(w, http.StatusForbidden, "consultation is not shared")
		return
	}
	if h.handleStoreError(w, err, "consultation") {
		return
	}

	respondJSON(w, http.StatusCreated, CommentResponse{
		ID:        pc.ID,
		UserID:    pc.UserID,
		Comment:   pc.Comment,
		CreatedAt: pc.CreatedAt,
	})
}

// listComments lists the peer comments on a shared consultation.
// @Summary      List comments on a shared consultation
// @Tags         Shared
// @Produce      json
// @Param        consultationID  path     string  true  "Consultation ID"
// @Success      200             {array}  CommentResponse
// @Failure      403             {object}  map[string]string  "consultation not shared"
// @Failure      404             {object}  map[string]string
// @Router       /consultations/{consultationID}/comments [get]
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.consultations.Comments(r.PathValue("consultationID"))
	if errors.Is(err, service.ErrNotShared) {
		respondError(w, http.StatusForbidden, "consultation is not shared")
		return
	}
	if h.handleStoreError(w, err, "consultation") {
		return
	}

	responses := make([]CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = CommentResponse{
			ID:        c.ID,
			UserID:    c.UserID,
			Comment:   c.Comment,
			CreatedAt: c.CreatedAt,
		}
	}
	respondJSON(w, http.StatusOK, responses)
}
