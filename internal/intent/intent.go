// Package intent provides keyword-based intent classification for prompts.
//
// Classification is deliberately shallow: a fixed table of 10 categories,
// each triggered by substring matches against the lowercased prompt. This
// keeps markers deterministic and dependency-free. Richer taxonomies
// (LLM-extracted, embedding-clustered) are external collaborators that
// produce the same "INTENT_*" marker shape.
package intent

import "strings"

// Fallback marker when no category keyword matches.
const Other = "INTENT_OTHER"

// rule is one category with its trigger keywords.
type rule struct {
	marker   string
	keywords []string
}

// rules define the fixed categories in emission order. A prompt may match
// several categories; markers are emitted in this table order.
var rules = []rule{
	{"INTENT_DEBUG", []string{"fix", "error", "bug", "debug", "broken", "issue", "problem", "wrong", "crash", "exception"}},
	{"INTENT_FEATURE", []string{"add", "create", "implement", "new", "build", "make", "feature", "functionality"}},
	{"INTENT_REFACTOR", []string{"refactor", "clean", "improve", "optimize", "restructure", "reorganize", "simplify"}},
	{"INTENT_TEST", []string{"test", "verify", "check", "validate", "ensure", "assert", "spec"}},
	{"INTENT_DOCUMENT", []string{"document", "comment", "explain", "describe", "docstring", "readme", "docs"}},
	{"INTENT_EXPLAIN", []string{"review", "explain", "understand", "what", "how", "why", "analyze", "inspect"}},
	{"INTENT_NAVIGATE", []string{"browse", "explore", "find", "search", "look", "navigate", "goto"}},
	{"INTENT_CONFIGURE", []string{"config", "setup", "install", "configure", "settings", "preferences"}},
	{"INTENT_DEPLOY", []string{"deploy", "release", "publish", "ship", "production", "staging"}},
	{"INTENT_REVIEW", []string{"review", "pr", "pull request", "code review", "feedback"}},
}

// Markers classifies prompt text into zero or more intent markers.
//
// Every matching category contributes one marker, in table order, so a
// prompt like "fix the bug and add a test" yields
// [INTENT_DEBUG INTENT_FEATURE INTENT_TEST]. Text that matches nothing
// yields the single Other fallback. Empty text also yields Other: an empty
// prompt is still a prompt, and downstream mining expects at least one
// marker per classified text.
func Markers(text string) []string {
	if text == "" {
		return []string{Other}
	}

	lowered := strings.ToLower(text)

	var markers []string
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				markers = append(markers, r.marker)
				break
			}
		}
	}

	if len(markers) == 0 {
		return []string{Other}
	}
	return markers
}

// Categories returns the marker names of all fixed categories, in emission
// order. Exposed for tests and for consumers that build one-hot encodings.
func Categories() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.marker
	}
	return out
}
