package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <trace.json>",
		Short: "Validate a trace document against the schema",
		Long: `Validate a trace document against the embedded CUE trace schema.

The mining pipeline itself is tolerant of malformed events; validate is
the strict check for producers who want to know their documents are
well-formed before shipping them.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "read trace", Err: err}
	}

	if err := ValidateTraceBytes(path, data); err != nil {
		var traceErr *TraceError
		message := err.Error()
		if errors.As(err, &traceErr) {
			message = traceErr.Message
		}

		if opts.Format == "json" {
			formatter.JSON(ValidationResult{Path: path, Valid: false, Errors: []string{message}})
		} else {
			fmt.Fprintf(formatter.Writer, "INVALID %s\n  %s\n", path, message)
		}
		return &ExitError{Code: ExitFailure, Message: "trace does not satisfy schema"}
	}

	if opts.Format == "json" {
		return formatter.JSON(ValidationResult{Path: path, Valid: true})
	}
	fmt.Fprintf(formatter.Writer, "OK %s\n", path)
	return nil
}
