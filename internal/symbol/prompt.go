package symbol

import "strings"

// promptEventTypes are the declared types that mark an event as carrying a
// user prompt. Matched against the full lowercased declared type, not the
// head token, because "prompt_sent" and "ai_prompt" differ only past the
// first delimiter.
var promptEventTypes = map[string]bool{
	"prompt":       true,
	"prompt_sent":  true,
	"conversation": true,
	"ai_prompt":    true,
}

// PromptText returns the prompt text carried by a prompt-typed event, or ""
// when the event is not a prompt event or carries no text.
//
// Upstream logs disagree on where the text lives, so several locations are
// checked in a fixed order: the event's own text/content/prompt/message
// fields first, then the same names inside the details block. The details
// block was already normalized at ingestion (see Details), so a
// string-encoded block needs no parsing here.
func PromptText(e *Event) string {
	if e == nil {
		return ""
	}

	if !promptEventTypes[strings.ToLower(e.DeclaredType())] {
		return ""
	}

	for _, text := range []string{e.Text, e.Content, e.Prompt, e.Message} {
		if text != "" {
			return text
		}
	}

	for _, field := range []string{"text", "content", "prompt", "message"} {
		if text := e.Details.Field(field); text != "" {
			return text
		}
	}

	return ""
}
