package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/weftworks/weft/internal/mine"
)

// Scenario defines one conformance scenario: a trace to mine and the
// assertions its motif output must satisfy.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden file
	// name for RunWithGolden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Trace lists the event steps, in stored order.
	Trace []EventStep `yaml:"trace"`

	// IncludePrompts expands prompt text into intent markers, matching the
	// encoder's opt-in behavior.
	IncludePrompts bool `yaml:"include_prompts,omitempty"`

	// Params optionally overrides individual mining parameters. Absent
	// fields keep their defaults.
	Params *ParamOverrides `yaml:"params,omitempty"`

	// Assertions validate the mined output. Supported types:
	// motifs_contain, motifs_absent, motif_count, sequence, category_count.
	Assertions []Assertion `yaml:"assertions"`
}

// EventStep is one trace event in a scenario.
type EventStep struct {
	// Type is the event's declared type.
	Type string `yaml:"type"`

	// Text is prompt text, for prompt-typed events.
	Text string `yaml:"text,omitempty"`

	// File is a file path carried in the event's details block.
	File string `yaml:"file,omitempty"`
}

// ParamOverrides holds optional per-scenario mining parameter overrides.
type ParamOverrides struct {
	MinSupport     *int `yaml:"min_support,omitempty"`
	MaxPatternLen  *int `yaml:"max_pattern_len,omitempty"`
	MaxTransitions *int `yaml:"max_transitions,omitempty"`
	MaxTotal       *int `yaml:"max_total,omitempty"`
}

// apply overlays the overrides on p.
func (o *ParamOverrides) apply(p mine.Params) mine.Params {
	if o == nil {
		return p
	}
	if o.MinSupport != nil {
		p.MinSupport = *o.MinSupport
	}
	if o.MaxPatternLen != nil {
		p.MaxPatternLen = *o.MaxPatternLen
	}
	if o.MaxTransitions != nil {
		p.MaxTransitions = *o.MaxTransitions
	}
	if o.MaxTotal != nil {
		p.MaxTotal = *o.MaxTotal
	}
	return p
}

// Assertion validates one aspect of the mined output.
type Assertion struct {
	// Type selects the assertion kind.
	Type string `yaml:"type"`

	// Motif is the motif string (motifs_contain, motifs_absent).
	Motif string `yaml:"motif,omitempty"`

	// Symbols is the expected full sequence (sequence).
	Symbols []string `yaml:"symbols,omitempty"`

	// Category is the category name (category_count).
	Category string `yaml:"category,omitempty"`

	// Count is the expected count (motif_count, category_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertMotifsContain = "motifs_contain"
	AssertMotifsAbsent  = "motifs_absent"
	AssertMotifCount    = "motif_count"
	AssertSequence      = "sequence"
	AssertCategoryCount = "category_count"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos like "assertion:" fail loudly instead of silently
// dropping checks.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// validateScenario checks required fields.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Trace) == 0 {
		return fmt.Errorf("trace list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Trace {
		if step.Type == "" {
			return fmt.Errorf("trace[%d]: type is required", i)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates one assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertMotifsContain, AssertMotifsAbsent:
		if a.Motif == "" {
			return fmt.Errorf("assertions[%d]: motif is required for %s", index, a.Type)
		}
	case AssertMotifCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertSequence:
		if len(a.Symbols) == 0 {
			return fmt.Errorf("assertions[%d]: symbols list is required for sequence", index)
		}
	case AssertCategoryCount:
		if a.Category == "" {
			return fmt.Errorf("assertions[%d]: category is required for category_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
