package cli

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
	"github.com/google/uuid"

	"github.com/weftworks/weft/internal/symbol"
)

//go:embed schema.cue
var traceSchema string

// TraceError represents a problem with a trace document.
type TraceError struct {
	Code    string
	Path    string
	Message string
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
}

// LoadTrace reads and decodes one trace document.
//
// Decoding is tolerant (symbol.ParseTrace): events that are not objects are
// dropped rather than rejected, matching the mining path's never-raise
// contract. Only file access problems and documents that are not JSON
// objects at the top level are errors. Traces without an id are assigned a
// fresh UUID so runs can be recorded against them.
//
// When strict is true the document is additionally validated against the
// embedded CUE schema and structural violations are errors.
func LoadTrace(path string, strict bool) (*symbol.Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TraceError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}

	if strict {
		if verr := ValidateTraceBytes(path, data); verr != nil {
			return nil, verr
		}
	}

	trace := symbol.ParseTrace(data)
	if len(trace.Events) == 0 && len(trace.Prompts) == 0 && trace.ID == "" {
		// Distinguish "empty trace" from "not a trace document at all".
		if !looksLikeObject(data) {
			return nil, &TraceError{Code: ErrCodeBadTrace, Path: path, Message: "document is not a JSON object"}
		}
	}

	if trace.ID == "" {
		trace.ID = uuid.NewString()
	}

	return trace, nil
}

// ValidateTraceBytes checks a trace document against the embedded CUE
// schema. Returns a *TraceError describing the first violation, or nil.
func ValidateTraceBytes(path string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(traceSchema)
	if err := schema.Err(); err != nil {
		return &TraceError{Code: ErrCodeBadTrace, Path: path, Message: fmt.Sprintf("schema: %v", err)}
	}

	expr, err := cuejson.Extract(path, data)
	if err != nil {
		return &TraceError{Code: ErrCodeBadTrace, Path: path, Message: fmt.Sprintf("invalid JSON: %v", err)}
	}

	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return &TraceError{Code: ErrCodeBadTrace, Path: path, Message: err.Error()}
	}

	unified := schema.LookupPath(cue.ParsePath("#Trace")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &TraceError{Code: ErrCodeBadTrace, Path: path, Message: err.Error()}
	}

	return nil
}

// looksLikeObject reports whether data starts with '{' after whitespace.
func looksLikeObject(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
