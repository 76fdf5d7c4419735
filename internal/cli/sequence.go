package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weftworks/weft/internal/encode"
	"github.com/weftworks/weft/internal/intent"
)

// SequenceOptions holds flags for the sequence command.
type SequenceOptions struct {
	*RootOptions
	NoPrompts bool
}

// SequenceResult holds the sequence command's output.
type SequenceResult struct {
	TraceID  string   `json:"trace_id"`
	Length   int      `json:"length"`
	Sequence []string `json:"sequence"`
}

// NewSequenceCommand creates the sequence command.
func NewSequenceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SequenceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sequence <trace.json>",
		Short: "Print the canonical symbol sequence for a trace",
		Long: `Build and print the canonical symbol sequence for a trace document.

Each event contributes one hashed EV_ symbol; prompt-bearing events are
preceded by their INTENT_ markers unless --no-prompts is set.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.NoPrompts, "no-prompts", false, "skip prompt-derived intent markers")

	return cmd
}

func runSequence(opts *SequenceOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	trace, err := LoadTrace(path, false)
	if err != nil {
		formatter.Error(ErrCodeBadTrace, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "load trace", Err: err}
	}

	enc := encode.Encoder{
		IncludePrompts: !opts.NoPrompts,
		Classify:       intent.Markers,
	}
	seq := enc.Sequence(trace)

	formatter.VerboseLog("trace %s: %d event(s), %d symbol(s)", trace.ID, len(trace.Events), len(seq))

	if opts.Format == "json" {
		return formatter.JSON(SequenceResult{TraceID: trace.ID, Length: len(seq), Sequence: seq})
	}

	for _, sym := range seq {
		fmt.Fprintln(formatter.Writer, sym)
	}
	return nil
}
