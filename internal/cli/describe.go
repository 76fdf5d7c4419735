package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weftworks/weft/internal/registry"
	"github.com/weftworks/weft/internal/store"
)

// DescribeOptions holds flags for the describe command.
type DescribeOptions struct {
	*RootOptions
	Database string
}

// DescribeResult holds the describe command's output.
type DescribeResult struct {
	Motif       string `json:"motif"`
	Original    string `json:"original,omitempty"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Resolved    bool   `json:"resolved"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DescribeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "describe <motif>",
		Short: "Decode a motif into a human-readable description",
		Long: `Decode a motif (hashed or raw) into a description and category.

Hashed M_ motifs resolve through the registry persisted with
'weft mine --db'. Unresolved hashes still get a deterministic
pseudo-label; raw motifs are described by their prefix.

Examples:
  weft describe M_86ae9b2a68 --db ./weft.db
  weft describe HIGH_SWITCHING`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database with persisted registry entries")

	return cmd
}

func runDescribe(opts *DescribeOptions, motif string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg := registry.New()

	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return &ExitError{Code: ExitCommandError, Message: "open database", Err: err}
		}
		defer st.Close()

		entries, err := st.LoadEntries(context.Background())
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return &ExitError{Code: ExitCommandError, Message: "load registry", Err: err}
		}
		for hashed, original := range entries {
			reg.Register(original, hashed)
		}
		formatter.VerboseLog("loaded %d registry entr(ies) from %s", len(entries), opts.Database)
	}

	original, resolved := reg.GetOriginal(motif)
	result := DescribeResult{
		Motif:       motif,
		Original:    original,
		Description: reg.Describe(motif),
		Category:    reg.Category(motif),
		Resolved:    resolved,
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}

	fmt.Fprintf(formatter.Writer, "Motif:       %s\n", result.Motif)
	if result.Resolved {
		fmt.Fprintf(formatter.Writer, "Original:    %s\n", result.Original)
	}
	fmt.Fprintf(formatter.Writer, "Description: %s\n", result.Description)
	fmt.Fprintf(formatter.Writer, "Category:    %s\n", result.Category)
	return nil
}
