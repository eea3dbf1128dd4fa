package patientcase_test

import (
	"testing"

	"github.com/sca-trainer/backend/internal/domain/patientcase"
)

func validPatient() patientcase.PatientCase {
	return patientcase.PatientCase{
		Name:       "James",
		Age:        45,
		Presenting: "Persistent headache for the past two weeks.",
		Context:    "History of migraines but describes this as different. Works in a high-stress environment.",
	}
}

func TestValidate(t *testing.T) {
	p := validPatient()
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*patientcase.PatientCase)
	}{
		{"empty name", func(p *patientcase.PatientCase) { p.Name = "" }},
		{"female name", func(p *patientcase.PatientCase) { p.Name = "Susan" }},
		{"neutral name", func(p *patientcase.PatientCase) { p.Name = "Alexis" }},
		{"age below range", func(p *patientcase.PatientCase) { p.Age = 17 }},
		{"age above range", func(p *patientcase.PatientCase) { p.Age = 86 }},
		{"zero age", func(p *patientcase.PatientCase) { p.Age = 0 }},
		{"empty presenting", func(p *patientcase.PatientCase) { p.Presenting = "" }},
		{"empty context", func(p *patientcase.PatientCase) { p.Context = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Errorf("expected validation error, got nil")
			}
		})
	}
}

func TestValidate_AgeBounds(t *testing.T) {
	for _, age := range []int{patientcase.MinAge, patientcase.MaxAge} {
		p := validPatient()
		p.Age = age
		if err := p.Validate(); err != nil {
			t.Errorf("age %d: unexpected error: %v", age, err)
		}
	}
}

func TestIsMaleName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"James", true},
		{"james", true},
		{"JAMES", true},
		{"  David  ", true},
		{"John Smith", true}, // first token only
		{"Susan", false},
		{"Emma", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := patientcase.IsMaleName(tt.name); got != tt.want {
			t.Errorf("IsMaleName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewCase(t *testing.T) {
	c, err := patientcase.NewCase(validPatient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" {
		t.Error("expected non-empty ID")
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestNewCase_Invalid(t *testing.T) {
	p := validPatient()
	p.Name = "Susan"

	if _, err := patientcase.NewCase(p); err == nil {
		t.Fatal("expected error for invalid patient, got nil")
	}
}
