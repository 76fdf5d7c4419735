package harness

import (
	"fmt"

	"github.com/weftworks/weft/internal/encode"
	"github.com/weftworks/weft/internal/intent"
	"github.com/weftworks/weft/internal/mine"
	"github.com/weftworks/weft/internal/registry"
	"github.com/weftworks/weft/internal/symbol"
)

// Run executes one scenario through the real mining pipeline and evaluates
// its assertions. The returned Result carries the sequence, the full motif
// output with registry resolution, and any assertion failures.
//
// Each run uses a fresh registry, so scenarios are isolated and motif
// resolution reflects only this trace's mining.
func Run(scenario *Scenario) (*Result, error) {
	trace := buildTrace(scenario)

	reg := registry.New()
	enc := encode.Encoder{
		Params:         scenario.Params.apply(mine.DefaultParams()),
		Registry:       reg,
		IncludePrompts: scenario.IncludePrompts,
		Classify:       intent.Markers,
	}

	motifs, err := enc.Motifs(trace)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := &Result{
		Scenario: scenario.Name,
		Sequence: enc.Sequence(trace),
	}
	for _, m := range motifs {
		record := MotifRecord{Motif: m, Category: reg.Category(m)}
		if original, ok := reg.GetOriginal(m); ok {
			record.Original = original
		}
		result.Motifs = append(result.Motifs, record)
	}

	result.Errors = EvaluateAssertions(result, scenario.Assertions)
	return result, nil
}

// buildTrace converts scenario event steps into a trace.
func buildTrace(scenario *Scenario) *symbol.Trace {
	trace := &symbol.Trace{ID: "scenario-" + scenario.Name}
	for _, step := range scenario.Trace {
		event := &symbol.Event{Type: step.Type, Text: step.Text}
		if step.File != "" {
			event.Details = symbol.Details{Fields: map[string]any{"file_path": step.File}}
		}
		trace.Events = append(trace.Events, event)
	}
	return trace
}
