package harness

// MotifRecord is one mined motif with its registry resolution.
type MotifRecord struct {
	// Motif is the motif string as the encoder emitted it.
	Motif string `json:"motif"`

	// Original is the raw pattern behind a hashed motif. Empty for raw
	// motifs, which are their own pattern.
	Original string `json:"original,omitempty"`

	// Category is the behavioral bucket assigned by the registry.
	Category string `json:"category"`
}

// Result is the outcome of running one scenario.
type Result struct {
	// Scenario is the scenario name.
	Scenario string

	// Sequence is the canonical symbol sequence the trace produced.
	Sequence []string

	// Motifs is the full mined output, in emission order.
	Motifs []MotifRecord

	// Errors lists failed assertions. Empty means the scenario passed.
	Errors []string
}

// Passed reports whether every assertion held.
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// motifStrings returns just the motif identifiers, in order.
func (r *Result) motifStrings() []string {
	out := make([]string, len(r.Motifs))
	for i, m := range r.Motifs {
		out[i] = m.Motif
	}
	return out
}
