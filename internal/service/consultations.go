// internal/service/consultations.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sca-trainer/backend/internal/domain/consultation"
	"github.com/sca-trainer/backend/internal/scoring"
	"github.com/sca-trainer/backend/internal/store"
	"github.com/sca-trainer/backend/pkg/metrics"
)

// ErrNotOwner is returned when a user tries to change a consultation they do
// not own.
var ErrNotOwner = errors.New("consultation belongs to another user")

// ErrNotShared is returned when commenting on a consultation its owner has
// not shared.
var ErrNotShared = errors.New("consultation is not shared")

// ConsultationService scores transcripts and manages the resulting records.
// Scoring is synchronous: one LLM round trip per request, cancelled with the
// caller's context. A failed scoring persists nothing.
type ConsultationService struct {
	store   *store.SQLiteStore
	scorer  *scoring.Scorer
	metrics *metrics.Manager
	logger  *slog.Logger
}

// NewConsultationService creates a ConsultationService. metrics may be nil.
func NewConsultationService(s *store.SQLiteStore, sc *scoring.Scorer, m *metrics.Manager, logger *slog.Logger) *ConsultationService {
	return &ConsultationService{
		store:   s,
		scorer:  sc,
		metrics: m,
		logger:  logger,
	}
}

// Score runs one scoring round trip against a stored case and persists the
// consultation record.
func (cs *ConsultationService) Score(ctx context.Context, userID, caseID, transcript string) (*consultation.Consultation, error) {
	// The case must exist before spending an LLM call on the transcript.
	if _, err := cs.store.GetCase(caseID); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := cs.scorer.ScoreTranscript(ctx, transcript)
	if !errors.Is(err, scoring.ErrEmptyTranscript) {
		// Empty input never reaches the LLM, so it is not a round trip.
		cs.metrics.ObserveLLMRequest(metrics.OpScoreTranscript, llmOutcome(err), time.Since(start))
	}
	if err != nil {
		cs.logger.Error("scoring failed", "case_id", caseID, "error", err)
		return nil, err
	}

	c := consultation.New(userID, caseID, transcript, *result)
	if err := cs.store.SaveConsultation(c); err != nil {
		cs.logger.Error("failed to save consultation", "consultation_id", c.ID, "error", err)
		return nil, err
	}

	cs.logger.Info("consultation scored",
		"consultation_id", c.ID,
		"case_id", caseID,
		"overall", c.Result.Overall,
	)
	return c, nil
}

// Get returns one consultation record.
func (cs *ConsultationService) Get(id string) (*consultation.Consultation, error) {
	return cs.store.GetConsultation(id)
}

// History returns a user's consultations, newest first.
func (cs *ConsultationService) History(userID string) ([]*consultation.Consultation, error) {
	return cs.store.ListConsultationsByUser(userID)
}

// SetShared toggles a consultation's visibility in the shared feed. Only the
// owner may change it.
func (cs *ConsultationService) SetShared(id, userID string, shared bool) error {
	c, err := cs.store.GetConsultation(id)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return ErrNotOwner
	}
	return cs.store.SetConsultationShared(id, shared)
}

// SharedFeed returns all shared consultations, newest first.
func (cs *ConsultationService) SharedFeed() ([]*consultation.Consultation, error) {
	return cs.store.ListSharedConsultations()
}

// AddComment attaches a peer comment to a shared consultation.
func (cs *ConsultationService) AddComment(consultationID, userID, comment string) (*consultation.PeerComment, error) {
	c, err := cs.store.GetConsultation(consultationID)
	if err != nil {
		return nil, err
	}
	if !c.IsShared {
		return nil, ErrNotShared
	}

	pc, err := consultation.NewComment(consultationID, userID, comment)
	if err != nil {
		return nil, err
	}
	if err := cs.store.SaveComment(pc); err != nil {
		return nil, err
	}
	return pc, nil
}

// Comments lists the peer comments on a shared consultation.
func (cs *ConsultationService) Comments(consultationID string) ([]*consultation.PeerComment, error) {
	c, err := cs.store.GetConsultation(consultationID)
	if err != nil {
		return nil, err
	}
	if !c.IsShared {
		return nil, ErrNotShared
	}
	return cs.store.ListComments(consultationID)
}
