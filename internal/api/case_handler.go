package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/sca-trainer/backend/internal/casegen"
	"github.com/sca-trainer/backend/internal/domain/patientcase"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateCaseRequest struct {
	Name       string `json:"name" example:"James"`
	Age        int    `json:"age" example:"45"`
	Presenting string `json:"presenting" example:"I've had this dull headache for about two weeks now."`
	Context    string `json:"context" example:"History of migraines. Works long hours at a computer."`
}

func (r *CreateCaseRequest) Validate() error {
	patient := patientcase.PatientCase{
		Name:       r.Name,
		Age:        r.Age,
		Presenting: r.Presenting,
		Context:    r.Context,
	}
	return patient.Validate()
}

type CaseResponse struct {
	ID         string    `json:"id" example:"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"`
	Name       string    `json:"name" example:"James"`
	Age        int       `json:"age" example:"45"`
	Presenting string    `json:"presenting" example:"I've had this dull headache for about two weeks now."`
	Context    string    `json:"context" example:"History of migraines. Works long hours at a computer."`
	CreatedAt  time.Time `json:"created_at"`
}

func toCaseResponse(c *patientcase.Case) CaseResponse {
	return CaseResponse{
		ID:         c.ID,
		Name:       c.Patient.Name,
		Age:        c.Patient.Age,
		Presenting: c.Patient.Presenting,
		Context:    c.Patient.Context,
		CreatedAt:  c.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generateCase creates a new patient case via the LLM.
// @Summary      Generate a patient case
// @Description  Runs one LLM round trip and returns a fully validated patient case. Nothing is stored on failure.
// @Tags         Cases
// @Produce      json
// @Success      201  {object}  CaseResponse
// @Failure      502  {object}  map[string]string  "LLM unavailable or returned an unusable case"
// @Router       /cases/generate [post]
func (h *Handler) generateCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.cases.Generate(r.Context())
	if err != nil {
		var genErr *casegen.GenerationError
		if errors.As(err, &genErr) {
			h.handleLLMError(w, err)
			return
		}
		h.handleStoreError(w, err, "case")
		return
	}

	respondJSON(w, http.StatusCreated, toCaseResponse(c))
}

// createCase stores a hand-authored case.
// @Summary      Author a patient case
// @Description  Stores a manually written case. It must pass the same validation as generated ones.
// @Tags         Cases
// @Accept       json
// @Produce      json
// @Param        body  body      CreateCaseRequest  true  "Case to store"
// @Success      201   {object}  CaseResponse
// @Failure      400   {object}  map[string]string
// @Router       /cases [post]
func (h *Handler) createCase(w http.ResponseWriter, r *http.Request) {
	var req CreateCaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.cases.Create(patientcase.PatientCase{
		Name:       req.Name,
		Age:        req.Age,
		Presenting: req.Presenting,
		Context:    req.Context,
	})
	if err != nil {
		h.handleStoreError(w, err, "case")
		return
	}

	respondJSON(w, http.StatusCreated, toCaseResponse(c))
}

// listCases lists all stored cases.
// @Summary      List patient cases
// @Tags         Cases
// @Produce      json
// @Success      200  {array}  CaseResponse
// @Router       /cases [get]
func (h *Handler) listCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.cases.List()
	if err != nil {
		h.logger.Error("failed to list cases", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	responses := make([]CaseResponse, len(cases))
	for i, c := range cases {
		responses[i] = toCaseResponse(c)
	}
	respondJSON(w, http.StatusOK, responses)
}

// getCase returns one stored case.
// @Summary      Get a patient case
// @Tags         Cases
// @Produce      json
// @Param        caseID  path      string  true  "Case ID"
// @Success      200     {object}  CaseResponse
// @Failure      404     {object}  map[string]string
// @Router       /cases/{caseID} [get]
func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.cases.Get(r.PathValue("caseID"))
	if h.handleStoreError(w, err, "case") {
		return
	}

	respondJSON(w, http.StatusOK, toCaseResponse(c))
}

// deleteCase removes a stored case.
// @Summary      Delete a patient case
// @Tags         Cases
// @Param        caseID  path  string  true  "Case ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /cases/{caseID} [delete]
func (h *Handler) deleteCase(w http.ResponseWriter, r *http.Request) {
	err := h.cases.Delete(r.PathValue("caseID"))
	if h.handleStoreError(w, err, "case") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
