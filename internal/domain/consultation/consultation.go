// Package consultation defines the scored consultation record and the
// per-domain score values produced by the transcript scorer.
package consultation

import (
	"errors"
	"fmt"
	"time"

	"github.com/sca-trainer/backend/internal/id"
)

// DomainScore is the assessment of one rubric domain.
type DomainScore struct {
	Score         int    `json:"score"`
	Justification string `json:"justification,omitempty"`
}

// Score is the structured result of scoring one transcript: one DomainScore
// per configured rubric domain, plus the computed average.
type Score struct {
	Domains map[string]DomainScore `json:"domains"`
	Overall float64                `json:"overall"`
}

// NewScore builds a Score from per-domain results, enforcing that every
// configured domain — and only those — is present with an in-range value.
func NewScore(domains map[string]DomainScore, domainIDs []string, minScore, maxScore int) (*Score, error) {
	if len(domainIDs) == 0 {
		return nil, errors.New("no rubric domains configured")
	}

	total := 0
	for _, did := range domainIDs {
		ds, ok := domains[did]
		if !ok {
			return nil, fmt.Errorf("domain %q: missing score", did)
		}
		if ds.Score < minScore || ds.Score > maxScore {
			return nil, fmt.Errorf("domain %q: score %d outside [%d, %d]", did, ds.Score, minScore, maxScore)
		}
		total += ds.Score
	}

	if len(domains) != len(domainIDs) {
		for did := range domains {
			if !contains(domainIDs, did) {
				return nil, fmt.Errorf("domain %q: not in rubric", did)
			}
		}
	}

	return &Score{
		Domains: domains,
		Overall: float64(total) / float64(len(domainIDs)),
	}, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Consultation is a persisted scoring record: who consulted on which case,
// the transcript, and the resulting scores.
type Consultation struct {
	ID         string
	UserID     string
	CaseID     string
	Transcript string
	Result     Score
	IsShared   bool
	CreatedAt  time.Time
}

// New creates a consultation record for a completed scoring round trip.
func New(userID, caseID, transcript string, result Score) *Consultation {
	return &Consultation{
		ID:         id.GenerateID(),
		UserID:     userID,
		CaseID:     caseID,
		Transcript: transcript,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
}

// MaxCommentLength caps peer comments, matching the stored column width.
const MaxCommentLength = 300

// PeerComment is feedback left on a shared consultation.
type PeerComment struct {
	ID             string
	ConsultationID string
	UserID         string
	Comment        string
	CreatedAt      time.Time
}

// NewComment validates and creates a peer comment.
func NewComment(consultationID, userID, comment string) (*PeerComment, error) {
	if comment == "" {
		return nil, errors.New("comment cannot be empty")
	}
	if len(comment) > MaxCommentLength {
		return nil, fmt.Errorf("comment exceeds %d characters", MaxCommentLength)
	}
	return &PeerComment{
		ID:             id.GenerateID(),
		ConsultationID: consultationID,
		UserID:         userID,
		Comment:        comment,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
