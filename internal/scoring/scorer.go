// Package scoring assesses consultation transcripts against the RCGP rubric
// by prompting an LLM and strictly validating its structured reply.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sca-trainer/backend/internal/domain/consultation"
	"github.com/sca-trainer/backend/internal/llm"
	"github.com/sca-trainer/backend/internal/rubric"
)

// ErrEmptyTranscript is returned before any network call when the transcript
// contains no content.
var ErrEmptyTranscript = errors.New("transcript is empty")

// ScoringError is returned when scoring fails so the caller can distinguish
// input rejection, provider failure, and out-of-contract model output via
// Unwrap.
type ScoringError struct {
	Reason  string
	Wrapped error
}

func (e *ScoringError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("scoring failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("scoring failed: %s", e.Reason)
}

func (e *ScoringError) Unwrap() error {
	return e.Wrapped
}

// Scorer scores transcripts against an immutable rubric. It holds no mutable
// state; concurrent calls are independent.
type Scorer struct {
	llm    llm.Completer
	rubric *rubric.Rubric
}

// NewScorer creates a Scorer bound to the given rubric. The rubric must
// already be validated; it is never mutated here.
func NewScorer(completer llm.Completer, r *rubric.Rubric) *Scorer {
	return &Scorer{
		llm:    completer,
		rubric: r,
	}
}

const systemPrompt = "You are a medical consultation scoring assistant."

// ScoreTranscript runs one scoring round trip. The returned score covers
// every rubric domain exactly once; on any failure the error is a
// *ScoringError and no partial score is returned.
func (s *Scorer) ScoreTranscript(ctx context.Context, transcript string) (*consultation.Score, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, &ScoringError{Reason: "rejected input", Wrapped: ErrEmptyTranscript}
	}

	raw, err := s.llm.Complete(ctx, s.buildPrompt(transcript), llm.Options{
		System:   systemPrompt,
		JSONOnly: true,
	})
	if err != nil {
		return nil, &ScoringError{Reason: "llm call failed", Wrapped: err}
	}

	score, err := s.parseScore(raw)
	if err != nil {
		return nil, &ScoringError{Reason: "invalid score from llm", Wrapped: err}
	}

	return score, nil
}

// buildPrompt embeds the full rubric verbatim alongside the transcript. The
// model must score against the exact published criteria; the rubric is never
// paraphrased here.
func (s *Scorer) buildPrompt(transcript string) string {
	var keys strings.Builder
	for i, did := range s.rubric.DomainIDs() {
		if i > 0 {
			keys.WriteString(", ")
		}
		fmt.Fprintf(&keys, "%q", did)
	}

	return fmt.Sprintf(`You are an expert evaluator of GP trainee consultations, scoring against the
Royal College of General Practitioners (RCGP) assessment framework below.

%s

TRANSCRIPT OF THE CONSULTATION:
%s

Score the consultation. For each domain give an integer score from %d to %d
and a short justification quoting the transcript.

Respond with ONLY this JSON — no explanation, no markdown. The object must
have exactly the keys %s:
{"<domain-id>": {"score": 1-5, "justification": "..."}, ...}`,
		s.rubric.Render(), transcript, rubric.MinScore, rubric.MaxScore, keys.String())
}

// domainResult accepts the object form of a per-domain value.
type domainResult struct {
	Score         *int   `json:"score"`
	Justification string `json:"justification"`
}

// parseScore interprets the raw model output strictly: a single JSON object
// keyed by rubric domain ID, each value either a bare integer or an object
// with an integer score and optional justification. Anything else — wrapping
// text, unknown domains, missing domains, out-of-range or non-integer
// scores — fails without producing a partial result.
func (s *Scorer) parseScore(raw string) (*consultation.Score, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("not a valid score object: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after score object")
	}

	domains := make(map[string]consultation.DomainScore, len(fields))
	for key, value := range fields {
		ds, err := parseDomainValue(value)
		if err != nil {
			return nil, fmt.Errorf("domain %q: %w", key, err)
		}
		domains[key] = ds
	}

	return consultation.NewScore(domains, s.rubric.DomainIDs(), rubric.MinScore, rubric.MaxScore)
}

func parseDomainValue(value json.RawMessage) (consultation.DomainScore, error) {
	// Bare integer form: {"data-gathering": 4}
	var n int
	if err := json.Unmarshal(value, &n); err == nil {
		return consultation.DomainScore{Score: n}, nil
	}

	// Object form: {"data-gathering": {"score": 4, "justification": "..."}}
	dec := json.NewDecoder(strings.NewReader(string(value)))
	dec.DisallowUnknownFields()

	var dr domainResult
	if err := dec.Decode(&dr); err != nil {
		return consultation.DomainScore{}, fmt.Errorf("neither integer nor score object: %w", err)
	}
	if dr.Score == nil {
		return consultation.DomainScore{}, errors.New("score field missing")
	}

	return consultation.DomainScore{
		Score:         *dr.Score,
		Justification: dr.Justification,
	}, nil
}
