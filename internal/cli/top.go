package cli

import (
	"github.com/spf13/cobra"
)

// TopOptions holds flags for the top command.
type TopOptions struct {
	*RootOptions
	Game  string
	Limit int
}

// NewTopCommand creates the top command.
func NewTopCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TopOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the leaderboard",
		Long: `Show the highest scores, across all games or for one game.

Scores are ranked highest first; on a tie the earlier score ranks higher.
A limit of zero or less shows no scores.

Examples:
  arcade top
  arcade top --game snake --limit 5
  arcade top --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Game, "game", "g", "", "restrict to one game")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 10, "maximum number of scores")

	return cmd
}

func runTop(opts *TopOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	records, err := sess.store.TopScores(sess.ctx, opts.Game, opts.Limit)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read leaderboard", err)
	}

	if sess.json() {
		return sess.formatter.Success(records)
	}
	renderBoard(cmd.OutOrStdout(), opts.Game, opts.Limit, records)
	return nil
}
