package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sca-trainer/backend/internal/llm"
	"github.com/sca-trainer/backend/internal/rubric"
)

type fakeCompleter struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, _ llm.Options) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const transcript = "Doctor: What brings you in today?\nPatient: I've had this headache for two weeks."

func TestScoreTranscript_FlatIntegers(t *testing.T) {
	fake := &fakeCompleter{response: `{"data-gathering":4,"clinical-management":3,"interpersonal-skills":5}`}
	s := NewScorer(fake, rubric.Default())

	score, err := s.ScoreTranscript(context.Background(), transcript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]int{
		"data-gathering":       4,
		"clinical-management":  3,
		"interpersonal-skills": 5,
	}
	if len(score.Domains) != len(want) {
		t.Fatalf("expected %d domains, got %d", len(want), len(score.Domains))
	}
	for did, n := range want {
		if got := score.Domains[did].Score; got != n {
			t.Errorf("domain %s: expected %d, got %d", did, n, got)
		}
	}
	if score.Overall != 4.0 {
		t.Errorf("expected overall 4.0, got %v", score.Overall)
	}
}

func TestScoreTranscript_ObjectFormWithJustification(t *testing.T) {
	fake := &fakeCompleter{response: `{
		"data-gathering": {"score": 4, "justification": "systematic history, explored ICE"},
		"clinical-management": {"score": 3},
		"interpersonal-skills": {"score": 5, "justification": "responded to cues"}
	}`}
	s := NewScorer(fake, rubric.Default())

	score, err := s.ScoreTranscript(context.Background(), transcript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := score.Domains["data-gathering"].Justification; got != "systematic history, explored ICE" {
		t.Errorf("unexpected justification %q", got)
	}
	if got := score.Domains["clinical-management"].Justification; got != "" {
		t.Errorf("expected empty justification, got %q", got)
	}
}

func TestScoreTranscript_EmptyInput(t *testing.T) {
	fake := &fakeCompleter{response: `{}`}
	s := NewScorer(fake, rubric.Default())

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := s.ScoreTranscript(context.Background(), input)
		if !errors.Is(err, ErrEmptyTranscript) {
			t.Errorf("input %q: expected ErrEmptyTranscript, got %v", input, err)
		}
	}

	if fake.calls != 0 {
		t.Errorf("expected no llm calls for empty input, got %d", fake.calls)
	}
}

func TestScoreTranscript_InvalidOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing domain", `{"data-gathering":4,"clinical-management":3}`},
		{"unknown domain", `{"data-gathering":4,"clinical-management":3,"interpersonal-skills":5,"bedside-manner":2}`},
		{"score too high", `{"data-gathering":6,"clinical-management":3,"interpersonal-skills":5}`},
		{"score too low", `{"data-gathering":0,"clinical-management":3,"interpersonal-skills":5}`},
		{"non-integer score", `{"data-gathering":4.5,"clinical-management":3,"interpersonal-skills":5}`},
		{"string score", `{"data-gathering":"4","clinical-management":3,"interpersonal-skills":5}`},
		{"object without score", `{"data-gathering":{"justification":"fine"},"clinical-management":3,"interpersonal-skills":5}`},
		{"wrapping text", "Here are the scores: {\"data-gathering\":4,\"clinical-management\":3,\"interpersonal-skills\":5}"},
		{"trailing text", `{"data-gathering":4,"clinical-management":3,"interpersonal-skills":5} overall a solid consultation`},
		{"not json", "The trainee did well across all domains."},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScorer(&fakeCompleter{response: tt.response}, rubric.Default())

			score, err := s.ScoreTranscript(context.Background(), transcript)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if score != nil {
				t.Errorf("expected no partial score, got %+v", score)
			}

			var scoreErr *ScoringError
			if !errors.As(err, &scoreErr) {
				t.Errorf("expected ScoringError, got %T", err)
			}
		})
	}
}

func TestScoreTranscript_ProviderError(t *testing.T) {
	provErr := &llm.ProviderError{Reason: "request failed"}
	s := NewScorer(&fakeCompleter{err: provErr}, rubric.Default())

	score, err := s.ScoreTranscript(context.Background(), transcript)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if score != nil {
		t.Errorf("expected no partial score, got %+v", score)
	}

	var perr *llm.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected wrapped ProviderError, got %v", err)
	}
}

func TestPromptEmbedsRubricAndTranscript(t *testing.T) {
	fake := &fakeCompleter{response: `{"data-gathering":4,"clinical-management":3,"interpersonal-skills":5}`}
	r := rubric.Default()
	s := NewScorer(fake, r)

	if _, err := s.ScoreTranscript(context.Background(), transcript); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(fake.lastPrompt, transcript) {
		t.Error("prompt missing transcript")
	}

	// Every anchor must appear verbatim — the rubric is embedded, not
	// paraphrased.
	for _, d := range r.Domains {
		for _, anchors := range d.Anchors {
			for _, anchor := range anchors {
				if !strings.Contains(fake.lastPrompt, anchor) {
					t.Errorf("prompt missing anchor %q", anchor)
				}
			}
		}
	}
}
