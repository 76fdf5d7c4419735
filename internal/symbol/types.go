package symbol

import "encoding/json"

// Event is one developer-activity record. Only the declared-type fields and
// the prompt-bearing fields are ever read; everything else an upstream log
// carries is dropped at ingestion.
type Event struct {
	Type      string  `json:"type,omitempty"`
	Operation string  `json:"operation,omitempty"`
	Verb      string  `json:"verb,omitempty"`
	Text      string  `json:"text,omitempty"`
	Content   string  `json:"content,omitempty"`
	Prompt    string  `json:"prompt,omitempty"`
	Message   string  `json:"message,omitempty"`
	Details   Details `json:"details,omitempty"`
}

// Prompt is a trace-level prompt record with no paired event.
type Prompt struct {
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
	Prompt  string `json:"prompt,omitempty"`
}

// Trace is an ordered event log for one working session. Events keep their
// stored order; nothing in this package re-sorts them.
type Trace struct {
	ID      string   `json:"id,omitempty"`
	Events  []*Event `json:"events"`
	Prompts []Prompt `json:"prompts,omitempty"`
}

// Details is the tagged union for an event's details block. Upstream logs
// store details either as a JSON object or as a string-encoded object; the
// union is resolved once, at unmarshal time.
//
// Exactly one representation is populated:
//   - Fields, when the block was an object or a parseable string
//   - Raw, when the block was a string that did not parse as JSON
type Details struct {
	Fields map[string]any
	Raw    string
}

// UnmarshalJSON resolves the text-or-structured ambiguity at the ingestion
// boundary. A string-encoded object gets one parse attempt; on failure the
// raw text is retained so nothing is silently dropped.
func (d *Details) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err == nil {
		d.Fields = fields
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		var nested map[string]any
		if err := json.Unmarshal([]byte(raw), &nested); err == nil {
			d.Fields = nested
			return nil
		}
		d.Raw = raw
		return nil
	}

	// Arrays, numbers, null: tolerated, carry nothing we read.
	return nil
}

// MarshalJSON round-trips the resolved representation.
func (d Details) MarshalJSON() ([]byte, error) {
	if d.Fields != nil {
		return json.Marshal(d.Fields)
	}
	if d.Raw != "" {
		return json.Marshal(d.Raw)
	}
	return []byte("null"), nil
}

// Field returns the named details field as a string, or "" if absent or
// not a string.
func (d Details) Field(name string) string {
	if d.Fields == nil {
		return ""
	}
	s, _ := d.Fields[name].(string)
	return s
}

// DeclaredType returns the event's declared type: the first non-empty of
// type, operation, verb. Returns "" when none is set.
func (e *Event) DeclaredType() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Type != "":
		return e.Type
	case e.Operation != "":
		return e.Operation
	default:
		return e.Verb
	}
}

// TextContent returns the prompt's text: the first non-empty of text,
// content, prompt.
func (p Prompt) TextContent() string {
	switch {
	case p.Text != "":
		return p.Text
	case p.Content != "":
		return p.Content
	default:
		return p.Prompt
	}
}
