package llm

import (
	"context"
	"fmt"
)

// Completer sends one prompt to a language model and returns its raw text
// output. Implementations may call a hosted API, a local model, or return
// canned results (for tests).
type Completer interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options tune a single completion request.
type Options struct {
	// System is prepended as a system message when non-empty.
	System string

	// Temperature is the sampling temperature. Zero means deterministic-ish.
	Temperature float64

	// JSONOnly asks the provider for its structured-output mode
	// (response_format json_object) so the reply is a bare JSON object.
	JSONOnly bool
}

// ProviderError is returned when the provider itself fails: unreachable,
// unauthorized, rate-limited, or an empty reply. It deliberately carries only
// a status code and a short reason — raw provider bodies are never propagated
// to callers or logs.
type ProviderError struct {
	Status  int // HTTP status from the provider, 0 for transport failures
	Reason  string
	Wrapped error
}

func (e *ProviderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("llm provider: %s: %v", e.Reason, e.Wrapped)
	}
	if e.Status != 0 {
		return fmt.Sprintf("llm provider: %s (status %d)", e.Reason, e.Status)
	}
	return fmt.Sprintf("llm provider: %s", e.Reason)
}

func (e *ProviderError) Unwrap() error {
	return e.Wrapped
}
