// Package rubric holds the RCGP CSA assessment rubric the scorer embeds in
// its prompts. The rubric is static configuration: it is loaded once at
// startup, validated, and never mutated afterwards. Changing the anchor text
// changes scoring behaviour, so overrides come from a YAML file rather than a
// code change.
package rubric

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Score bounds shared by every domain.
const (
	MinScore = 1
	MaxScore = 5
)

// Domain IDs. The scorer requires exactly one score per configured domain.
const (
	DomainDataGathering       = "data-gathering"
	DomainClinicalManagement  = "clinical-management"
	DomainInterpersonalSkills = "interpersonal-skills"
)

// Band names. Each domain carries descriptive anchors for all three bands.
const (
	BandClearPass    = "clear-pass"
	BandMarginalPass = "marginal-pass"
	BandClearFail    = "clear-fail"
)

var bands = []string{BandClearPass, BandMarginalPass, BandClearFail}

// Domain is one scored dimension of the consultation.
type Domain struct {
	ID      string              `koanf:"id" json:"id"`
	Name    string              `koanf:"name" json:"name"`
	Anchors map[string][]string `koanf:"anchors" json:"anchors"`
}

// Rubric is the full assessment framework.
type Rubric struct {
	Version string   `koanf:"version" json:"version"`
	Domains []Domain `koanf:"domains" json:"domains"`
}

// LoadFile reads a rubric override from a YAML file.
func LoadFile(path string) (*Rubric, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("rubric: load %s: %w", path, err)
	}

	var r Rubric
	if err := k.UnmarshalWithConf("", &r, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("rubric: unmarshal %s: %w", path, err)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks that the rubric is usable for scoring: at least one domain,
// unique IDs, and every band populated with at least one anchor.
func (r *Rubric) Validate() error {
	if len(r.Domains) == 0 {
		return fmt.Errorf("rubric: no domains configured")
	}

	seen := make(map[string]bool, len(r.Domains))
	for _, d := range r.Domains {
		if d.ID == "" {
			return fmt.Errorf("rubric: domain with empty id")
		}
		if seen[d.ID] {
			return fmt.Errorf("rubric: duplicate domain %q", d.ID)
		}
		seen[d.ID] = true

		for _, band := range bands {
			if len(d.Anchors[band]) == 0 {
				return fmt.Errorf("rubric: domain %q has no %s anchors", d.ID, band)
			}
		}
	}
	return nil
}

// DomainIDs returns the configured domain IDs in rubric order.
func (r *Rubric) DomainIDs() []string {
	ids := make([]string, len(r.Domains))
	for i, d := range r.Domains {
		ids[i] = d.ID
	}
	return ids
}

// Domain returns the domain with the given ID, or false.
func (r *Rubric) Domain(id string) (Domain, bool) {
	for _, d := range r.Domains {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}

// Render produces the rubric as prompt text. Every anchor string appears
// verbatim — the scorer's contract is that the model sees the exact published
// criteria, not a paraphrase.
func (r *Rubric) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "RCGP CSA ASSESSMENT FRAMEWORK (rubric version %s)\n", r.Version)
	fmt.Fprintf(&b, "Each domain is scored as an integer from %d to %d.\n", MinScore, MaxScore)

	for _, d := range r.Domains {
		fmt.Fprintf(&b, "\nDOMAIN: %s (%s)\n", d.Name, d.ID)
		for _, band := range bands {
			fmt.Fprintf(&b, "%s:\n", bandLabel(band))
			for _, anchor := range d.Anchors[band] {
				fmt.Fprintf(&b, "- %s\n", anchor)
			}
		}
	}
	return b.String()
}

// AnchorCount reports the total number of anchor criteria, mostly for logging.
func (r *Rubric) AnchorCount() int {
	n := 0
	for _, d := range r.Domains {
		for _, anchors := range d.Anchors {
			n += len(anchors)
		}
	}
	return n
}

func bandLabel(band string) string {
	switch band {
	case BandClearPass:
		return "Clear pass"
	case BandMarginalPass:
		return "Marginal pass"
	case BandClearFail:
		return "Clear fail"
	}
	return band
}
