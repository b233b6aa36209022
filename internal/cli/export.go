package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataKh4n/arcadeKh4n/internal/store"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the leaderboard to CSV",
		Long: `Write the overall leaderboard to a CSV file with the header
player,score,game,date. The number of rows is capped by export_limit.

Examples:
  arcade export
  arcade export -o /tmp/scores.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "highscores_export.csv", "destination CSV file")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	sess.formatter.VerboseLog("Exporting up to %d scores to %s", sess.config.ExportLimit, opts.Output)
	n, err := sess.store.Export(sess.ctx, opts.Output)
	if err != nil {
		if store.IsExportError(err) {
			return WrapExitError(ExitCommandError, "failed to write export file", err)
		}
		return WrapExitError(ExitFailure, "failed to read leaderboard", err)
	}

	if sess.json() {
		return sess.formatter.Success(ExportResult{Path: opts.Output, Rows: n})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scores to %s\n", n, opts.Output)
	return nil
}
