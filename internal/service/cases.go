// internal/service/cases.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sca-trainer/backend/internal/casegen"
	"github.com/sca-trainer/backend/internal/domain/patientcase"
	"github.com/sca-trainer/backend/internal/llm"
	"github.com/sca-trainer/backend/internal/store"
	"github.com/sca-trainer/backend/pkg/metrics"
)

// CaseService generates patient cases and persists them. Generation is
// synchronous: one LLM round trip per request, cancelled with the caller's
// context.
type CaseService struct {
	store     *store.SQLiteStore
	generator *casegen.Generator
	metrics   *metrics.Manager
	logger    *slog.Logger
}

// NewCaseService creates a CaseService. metrics may be nil.
func NewCaseService(s *store.SQLiteStore, g *casegen.Generator, m *metrics.Manager, logger *slog.Logger) *CaseService {
	return &CaseService{
		store:     s,
		generator: g,
		metrics:   m,
		logger:    logger,
	}
}

// Generate runs one case generation round trip and persists the result.
// A failed generation persists nothing.
func (cs *CaseService) Generate(ctx context.Context) (*patientcase.Case, error) {
	start := time.Now()
	pc, err := cs.generator.GenerateCase(ctx)
	cs.metrics.ObserveLLMRequest(metrics.OpGenerateCase, llmOutcome(err), time.Since(start))
	if err != nil {
		cs.logger.Error("case generation failed", "error", err)
		return nil, err
	}

	c, err := patientcase.NewCase(*pc)
	if err != nil {
		return nil, err
	}

	if err := cs.store.SaveCase(c); err != nil {
		cs.logger.Error("failed to save case", "case_id", c.ID, "error", err)
		return nil, err
	}

	cs.logger.Info("case generated", "case_id", c.ID, "age", c.Patient.Age)
	return c, nil
}

// Create persists a hand-authored case. It passes through the same
// validation as generated ones.
func (cs *CaseService) Create(patient patientcase.PatientCase) (*patientcase.Case, error) {
	c, err := patientcase.NewCase(patient)
	if err != nil {
		return nil, err
	}
	if err := cs.store.SaveCase(c); err != nil {
		cs.logger.Error("failed to save case", "case_id", c.ID, "error", err)
		return nil, err
	}
	return c, nil
}

// Get returns one stored case.
func (cs *CaseService) Get(id string) (*patientcase.Case, error) {
	return cs.store.GetCase(id)
}

// List returns all stored cases, newest first.
func (cs *CaseService) List() ([]*patientcase.Case, error) {
	return cs.store.ListCases()
}

// Delete removes a stored case.
func (cs *CaseService) Delete(id string) error {
	return cs.store.DeleteCase(id)
}

// llmOutcome maps a round trip result onto a metrics outcome label.
func llmOutcome(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	var perr *llm.ProviderError
	if errors.As(err, &perr) {
		return metrics.OutcomeProvider
	}
	return metrics.OutcomeInvalid
}
