package symbol

// Classifier maps prompt text to zero or more "INTENT_*" markers, in
// discovery order. Implementations may return a single fallback marker for
// text they cannot classify. See the intent package for the keyword-table
// implementation.
type Classifier func(text string) []string

// Builder assembles the ordered symbol sequence for a trace.
//
// The sequence is the sole input to every miner: canonical event symbols in
// stored event order, optionally interleaved with intent markers derived
// from prompts. Markers for a prompt-bearing event are inserted immediately
// before that event's own symbol.
type Builder struct {
	// IncludePrompts controls whether prompt text is expanded to intent
	// markers. When false, prompts contribute nothing and the sequence is
	// event symbols only.
	IncludePrompts bool

	// Classify supplies intent markers for prompt text. Nil disables
	// marker insertion even when IncludePrompts is set.
	Classify Classifier
}

// Sequence builds the canonical symbol sequence for one trace.
//
// Never fails: a nil trace yields nil, nil events are skipped, and a
// malformed event contributes nothing beyond what could be read from it.
// Order is stored event order; no re-sorting occurs.
//
// Trace-level prompts (prompts stored separately from the event list) are
// appended after all event symbols, with no paired event symbol.
func (b Builder) Sequence(trace *Trace) []string {
	if trace == nil {
		return nil
	}

	var seq []string

	for _, event := range trace.Events {
		if event == nil {
			continue
		}

		if b.IncludePrompts && b.Classify != nil {
			if text := PromptText(event); text != "" {
				seq = append(seq, b.Classify(text)...)
			}
		}

		seq = append(seq, Canonicalize(event))
	}

	if b.IncludePrompts && b.Classify != nil {
		for _, prompt := range trace.Prompts {
			if text := prompt.TextContent(); text != "" {
				seq = append(seq, b.Classify(text)...)
			}
		}
	}

	return seq
}
