package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weftworks/weft/internal/encode"
	"github.com/weftworks/weft/internal/intent"
	"github.com/weftworks/weft/internal/mine"
	"github.com/weftworks/weft/internal/registry"
	"github.com/weftworks/weft/internal/store"
)

// MineOptions holds flags for the mine command.
type MineOptions struct {
	*RootOptions
	ParamsFile string
	Database   string
	NoPrompts  bool
	Describe   bool
}

// MineResult holds the mine command's output.
type MineResult struct {
	TraceID string       `json:"trace_id"`
	Count   int          `json:"count"`
	Motifs  []MinedMotif `json:"motifs"`
	RunID   string       `json:"run_id,omitempty"`
}

// MinedMotif is one motif with optional decoded metadata.
type MinedMotif struct {
	Motif       string `json:"motif"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// NewMineCommand creates the mine command.
func NewMineCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mine <trace.json>",
		Short: "Mine a trace for workflow motifs",
		Long: `Mine one trace document for workflow motifs.

Builds the canonical symbol sequence, runs the transition, structural,
frequent-sequence, and compression miners, and prints the unified hashed
motif set. With --db, registry entries and the run are persisted so motifs
can be decoded later with 'weft describe'.

Examples:
  weft mine trace.json
  weft mine trace.json --describe
  weft mine trace.json --db ./weft.db --params mining.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMine(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ParamsFile, "params", "", "YAML file with mining parameters")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database for registry persistence")
	cmd.Flags().BoolVar(&opts.NoPrompts, "no-prompts", false, "skip prompt-derived intent markers")
	cmd.Flags().BoolVar(&opts.Describe, "describe", false, "include descriptions and categories")

	return cmd
}

func runMine(opts *MineOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	params := mine.DefaultParams()
	if opts.ParamsFile != "" {
		loaded, err := mine.LoadParams(opts.ParamsFile)
		if err != nil {
			formatter.Error(ErrCodeBadParams, err.Error(), nil)
			return &ExitError{Code: ExitCommandError, Message: "load params", Err: err}
		}
		params = loaded
	}

	trace, err := LoadTrace(path, false)
	if err != nil {
		formatter.Error(ErrCodeBadTrace, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "load trace", Err: err}
	}

	reg := registry.New()
	enc := encode.Encoder{
		Params:         params,
		Registry:       reg,
		IncludePrompts: !opts.NoPrompts,
		Classify:       intent.Markers,
	}

	motifs, err := enc.Motifs(trace)
	if err != nil {
		formatter.Error(ErrCodeBadParams, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "mine trace", Err: err}
	}

	formatter.VerboseLog("trace %s: %d motif(s), %d registered hash(es)",
		trace.ID, len(motifs), reg.Stats().RegisteredHashes)

	result := MineResult{TraceID: trace.ID, Count: len(motifs)}
	for _, m := range motifs {
		mined := MinedMotif{Motif: m}
		if opts.Describe {
			mined.Description = reg.Describe(m)
			mined.Category = reg.Category(m)
		}
		result.Motifs = append(result.Motifs, mined)
	}

	if opts.Database != "" {
		runID, err := persistRun(opts.Database, trace.ID, reg, len(motifs))
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return &ExitError{Code: ExitCommandError, Message: "persist run", Err: err}
		}
		result.RunID = runID
		formatter.VerboseLog("recorded run %s in %s", runID, opts.Database)
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}

	if len(motifs) == 0 {
		fmt.Fprintln(formatter.Writer, encode.EmptyWorkflow)
		return nil
	}
	for _, mined := range result.Motifs {
		if opts.Describe {
			fmt.Fprintf(formatter.Writer, "%s\t%s\t%s\n", mined.Motif, mined.Category, mined.Description)
			continue
		}
		fmt.Fprintln(formatter.Writer, mined.Motif)
	}
	return nil
}

// persistRun saves registry entries and the run record.
func persistRun(dbPath, traceID string, reg *registry.Registry, motifCount int) (string, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer st.Close()

	ctx := context.Background()
	if err := st.SaveEntries(ctx, reg.Entries()); err != nil {
		return "", err
	}

	run, err := st.RecordRun(ctx, traceID, motifCount)
	if err != nil {
		return "", err
	}
	return run.ID, nil
}
