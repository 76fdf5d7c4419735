package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation failure (trace does not satisfy the schema)
	ExitCommandError = 2 // Command error (invalid paths, database not found, etc.)
)

// Error codes reported in JSON output.
const (
	ErrCodeNotFound   = "E_NOT_FOUND"
	ErrCodeBadTrace   = "E_BAD_TRACE"
	ErrCodeBadParams  = "E_BAD_PARAMS"
	ErrCodeStore      = "E_STORE"
	ErrCodeUnresolved = "E_UNRESOLVED"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic output; defaults to Writer when nil
	Verbose   bool
}

// Response is the standard JSON response envelope for CLI output.
type Response struct {
	Status string         `json:"status"` // "ok" or "error"
	Data   any            `json:"data,omitempty"`
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError is the error structure for CLI responses.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// JSON outputs a successful result as a JSON envelope.
func (f *OutputFormatter) JSON(data any) error {
	return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &ResponseError{Code: code, Message: message, Details: details},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled. Logs go to
// ErrWriter so they never corrupt JSON on the primary writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
