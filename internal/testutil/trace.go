// Package testutil provides builders for trace fixtures.
//
// Builders produce fully deterministic traces: fixed IDs, no timestamps,
// no random content. The same builder calls always yield byte-identical
// JSON, which keeps golden tests stable.
package testutil

import "github.com/weftworks/weft/internal/symbol"

// TraceOf builds a trace whose events carry the given declared types, in
// order. The trace ID is fixed so tests stay deterministic.
func TraceOf(types ...string) *symbol.Trace {
	trace := &symbol.Trace{ID: "trace-test-0001"}
	for _, t := range types {
		trace.Events = append(trace.Events, &symbol.Event{Type: t})
	}
	return trace
}

// Event builds one event with a declared type.
func Event(declaredType string) *symbol.Event {
	return &symbol.Event{Type: declaredType}
}

// PromptEvent builds a prompt event carrying text.
func PromptEvent(text string) *symbol.Event {
	return &symbol.Event{Type: "prompt", Text: text}
}

// EditEvent builds a file-edit event touching the given path.
func EditEvent(declaredType, path string) *symbol.Event {
	return &symbol.Event{
		Type:    declaredType,
		Details: symbol.Details{Fields: map[string]any{"file_path": path}},
	}
}
