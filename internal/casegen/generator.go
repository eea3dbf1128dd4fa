// Package casegen builds synthetic patient cases by prompting an LLM and
// strictly validating its JSON reply.
package casegen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sca-trainer/backend/internal/domain/patientcase"
	"github.com/sca-trainer/backend/internal/llm"
)

// GenerationError is returned when case generation fails, so the caller can
// distinguish "the LLM produced an out-of-contract case" from "the LLM was
// unreachable" via Unwrap.
type GenerationError struct {
	Reason  string
	Wrapped error
}

func (e *GenerationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("case generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("case generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Wrapped
}

// Generator produces patient cases through a single LLM round trip per call.
// It holds no mutable state; concurrent calls are independent.
type Generator struct {
	llm         llm.Completer
	temperature float64
}

// NewGenerator creates a Generator. Temperature is the only knob: case
// variability comes entirely from model sampling, never from logic here.
func NewGenerator(completer llm.Completer, temperature float64) *Generator {
	return &Generator{
		llm:         completer,
		temperature: temperature,
	}
}

const systemPrompt = "You are a medical case generator for GP training."

// casePrompt is a fixed template; the same text is sent on every call.
const casePrompt = `Generate a fictional patient case for a simulated GP consultation.

The patient must be male, aged between 18 and 85.

Respond with ONLY a JSON object with exactly these four keys — no markdown,
no explanation, no additional keys:
{
  "name": "a common male first name, first name only",
  "age": an integer between 18 and 85,
  "presenting": "the presenting complaint in 1-2 sentences, in the patient's own words",
  "context": "2-3 sentences of background: relevant history, medication, occupation or social context"
}`

// GenerateCase runs one generation round trip. The returned case has passed
// full validation; on any failure the error is a *GenerationError and no
// partial case is returned.
func (g *Generator) GenerateCase(ctx context.Context) (*patientcase.PatientCase, error) {
	raw, err := g.llm.Complete(ctx, casePrompt, llm.Options{
		System:      systemPrompt,
		Temperature: g.temperature,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, &GenerationError{Reason: "llm call failed", Wrapped: err}
	}

	pc, err := parseCase(raw)
	if err != nil {
		return nil, &GenerationError{Reason: "invalid case from llm", Wrapped: err}
	}

	return pc, nil
}

// parseCase interprets the raw model output strictly: a single JSON object
// with exactly the four required keys and nothing around it. Wrapping text,
// unknown keys, wrong types, and trailing content all fail — the output is
// never coerced into a best-effort case.
func parseCase(raw string) (*patientcase.PatientCase, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	dec.DisallowUnknownFields()

	var pc patientcase.PatientCase
	if err := dec.Decode(&pc); err != nil {
		return nil, fmt.Errorf("not a valid case object: %w", err)
	}

	// Reject trailing content after the object.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after case object")
	}

	if err := pc.Validate(); err != nil {
		return nil, err
	}

	return &pc, nil
}
