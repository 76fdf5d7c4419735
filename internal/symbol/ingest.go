package symbol

import (
	"bytes"
	"encoding/json"
)

// ParseTrace decodes a JSON trace document, tolerating malformed pieces.
//
// This is the ingestion boundary: event containers that are not arrays
// yield an empty event list, events that are not objects are dropped, and
// details blocks are resolved into the Details union. ParseTrace never
// fails; garbage input degrades to an empty trace, matching the mining
// path's never-raise contract. Callers that want strict structural
// validation should run the CUE schema check first.
func ParseTrace(data []byte) *Trace {
	var doc struct {
		ID      string          `json:"id"`
		Events  json.RawMessage `json:"events"`
		Prompts json.RawMessage `json:"prompts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &Trace{}
	}

	trace := &Trace{ID: doc.ID}

	var rawEvents []json.RawMessage
	if err := json.Unmarshal(doc.Events, &rawEvents); err == nil {
		for _, raw := range rawEvents {
			if isNull(raw) {
				continue
			}
			var event Event
			if err := json.Unmarshal(raw, &event); err != nil {
				continue
			}
			trace.Events = append(trace.Events, &event)
		}
	}

	var rawPrompts []json.RawMessage
	if err := json.Unmarshal(doc.Prompts, &rawPrompts); err == nil {
		for _, raw := range rawPrompts {
			if isNull(raw) {
				continue
			}
			var prompt Prompt
			if err := json.Unmarshal(raw, &prompt); err != nil {
				continue
			}
			trace.Prompts = append(trace.Prompts, prompt)
		}
	}

	return trace
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
