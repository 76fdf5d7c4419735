// Package encode assembles the full trace -> motif pipeline: sequence
// building, the four statistical miners, unification, and the raw
// file-structure and intent supplements, plus the bounded string rendering
// consumed by downstream formatters.
package encode

import (
	"strings"

	"github.com/weftworks/weft/internal/mine"
	"github.com/weftworks/weft/internal/registry"
	"github.com/weftworks/weft/internal/symbol"
)

// EmptyWorkflow is the sentinel emitted for traces that mine to nothing.
const EmptyWorkflow = "EMPTY_WORKFLOW"

// Rendering defaults for MotifsString.
const (
	DefaultLimit     = 50
	DefaultMaxLength = 2000
)

// Encoder turns traces into motif representations. The zero value mines
// with default params, no prompts, and no registry.
type Encoder struct {
	// Params bounds the statistical miners. Zero value is replaced by
	// mine.DefaultParams.
	Params mine.Params

	// Registry, when non-nil, receives hash -> pattern registrations from
	// the unifier.
	Registry *registry.Registry

	// IncludePrompts interleaves intent markers into the sequence and
	// appends intent-anchored motifs.
	IncludePrompts bool

	// Classify supplies intent markers; defaults to nothing (prompts
	// ignored) when nil.
	Classify symbol.Classifier
}

// Sequence builds the canonical symbol sequence for a trace under this
// encoder's prompt settings.
func (e Encoder) Sequence(trace *symbol.Trace) []string {
	builder := symbol.Builder{IncludePrompts: e.IncludePrompts, Classify: e.Classify}
	return builder.Sequence(trace)
}

// Motifs extracts the motif representation for one trace: the unified
// hashed set from the four miners, followed by raw file-structure motifs
// and (when prompts are included) intent-anchored motifs. Order-preserving
// dedup is applied across the whole list.
//
// Traces that build an empty or single-symbol sequence yield nil. The only
// error source is mining parameter validation.
func (e Encoder) Motifs(trace *symbol.Trace) ([]string, error) {
	if trace == nil || len(trace.Events) == 0 {
		return nil, nil
	}

	seq := e.Sequence(trace)
	if len(seq) == 0 {
		return nil, nil
	}

	params := e.Params
	if params == (mine.Params{}) {
		params = mine.DefaultParams()
	}

	var reg mine.Registrar
	if e.Registry != nil {
		reg = e.Registry
	}

	motifs, err := mine.FromSequence(seq, params, reg)
	if err != nil {
		return nil, err
	}

	motifs = append(motifs, mine.FileStructural(trace)...)
	if e.IncludePrompts {
		motifs = append(motifs, mine.IntentAnchored(seq)...)
	}

	return dedup(motifs), nil
}

// MotifsString renders the motif representation as a single bounded string:
// at most limit motifs joined with " | ", truncated to maxLength with a
// trailing marker. Empty results render as the EmptyWorkflow sentinel.
// Non-positive limit or maxLength fall back to the package defaults.
func (e Encoder) MotifsString(trace *symbol.Trace, limit, maxLength int) (string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	motifs, err := e.Motifs(trace)
	if err != nil {
		return "", err
	}
	if len(motifs) == 0 {
		return EmptyWorkflow, nil
	}

	if len(motifs) > limit {
		motifs = motifs[:limit]
	}

	joined := strings.Join(motifs, " | ")
	if len(joined) > maxLength {
		joined = joined[:maxLength] + "... [truncated]"
	}

	return joined, nil
}

// dedup removes duplicates preserving first-occurrence order.
func dedup(motifs []string) []string {
	if len(motifs) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(motifs))
	out := motifs[:0]
	for _, m := range motifs {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
