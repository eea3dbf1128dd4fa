// Package patientcase defines the generated patient scenario and its
// validation rules. A PatientCase is immutable once generated: a fresh
// request regenerates, it never mutates an existing one.
package patientcase

import (
	"fmt"
	"time"

	"github.com/sca-trainer/backend/internal/id"
)

// Age bounds for generated patients.
const (
	MinAge = 18
	MaxAge = 85
)

// PatientCase is the value produced by one generation round trip. The JSON
// tags match the generation contract: exactly these four keys.
type PatientCase struct {
	Name       string `json:"name"`       // first name only, male
	Age        int    `json:"age"`        // within [MinAge, MaxAge]
	Presenting string `json:"presenting"` // 1-2 sentences
	Context    string `json:"context"`    // 2-3 sentences
}

// Validate checks the generation contract. Each violation names the offending
// field so callers can log and display it.
func (c *PatientCase) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("field name: must not be empty")
	}
	if !IsMaleName(c.Name) {
		return fmt.Errorf("field name: %q is not a recognized male first name", c.Name)
	}
	if c.Age < MinAge || c.Age > MaxAge {
		return fmt.Errorf("field age: %d outside [%d, %d]", c.Age, MinAge, MaxAge)
	}
	if c.Presenting == "" {
		return fmt.Errorf("field presenting: must not be empty")
	}
	if c.Context == "" {
		return fmt.Errorf("field context: must not be empty")
	}
	return nil
}

// Case is a persisted patient case: a generated (or hand-authored)
// PatientCase plus identity and timestamp.
type Case struct {
	ID        string
	Patient   PatientCase
	CreatedAt time.Time
}

// NewCase wraps a validated PatientCase for persistence.
func NewCase(patient PatientCase) (*Case, error) {
	if err := patient.Validate(); err != nil {
		return nil, err
	}
	return &Case{
		ID:        id.GenerateID(),
		Patient:   patient,
		CreatedAt: time.Now().UTC(),
	}, nil
}
