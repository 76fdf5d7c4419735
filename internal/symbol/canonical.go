package symbol

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentinel symbol for events that carry no usable declared type.
const Other = "EV_OTHER"

// delimiters separating tokens inside a declared type. The head is the first
// non-empty token once the type is split on these.
const delimiters = "._/\\-"

// Canonicalize maps one event to its canonical symbol.
//
// This is the rule-free encoder that produces a stable finite alphabet for
// sequence mining. The declared type's head token is lowercased, NFC
// normalized, and SHA-1 hashed; the first 6 hex characters become the
// symbol. Hashing collapses long type tails and keeps the alphabet
// privacy-safe and stable across IDEs, agents, and languages.
//
// Canonicalize never fails:
//   - nil event, no declared type, or no non-empty head token => Other
//
// Identical heads always produce identical symbols. Distinct heads may
// collide in the 24-bit hash space; collisions are accepted and bounded.
func Canonicalize(e *Event) string {
	if e == nil {
		return Other
	}

	declared := e.DeclaredType()
	if declared == "" {
		return Other
	}

	head := headToken(declared)
	if head == "" {
		return Other
	}

	return fmt.Sprintf("EV_%s", ShortHash(head))
}

// headToken extracts the first non-empty delimiter-separated token of a
// declared type, lowercased and NFC normalized for hash stability.
func headToken(declared string) string {
	lowered := strings.ToLower(declared)
	for _, part := range strings.FieldsFunc(lowered, isDelimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			return norm.NFC.String(part)
		}
	}
	return ""
}

func isDelimiter(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}
