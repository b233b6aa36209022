package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataKh4n/arcadeKh4n/internal/store"
)

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
	Player string
	Score  int
	Game   string
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a finished game's score",
		Long: `Record a score for a player in a game.

A blank player name is saved under the configured default player.

Examples:
  arcade record --player Alice --score 1500 --game snake
  arcade record --score 300 --game guess_the_number`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Player, "player", "p", "", "player name shown on the leaderboard")
	cmd.Flags().IntVarP(&opts.Score, "score", "s", 0, "score to record (required)")
	_ = cmd.MarkFlagRequired("score")
	cmd.Flags().StringVarP(&opts.Game, "game", "g", "", "game identifier (required)")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func runRecord(opts *RecordOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	rec, err := sess.store.AddScore(sess.ctx, opts.Player, opts.Score, opts.Game)
	if errors.Is(err, store.ErrEmptyGame) {
		return WrapExitError(ExitCommandError, "invalid score", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "failed to save score", err)
	}

	if sess.json() {
		return sess.formatter.Success(rec)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved score %d for %s in %s.\n", rec.Score, rec.Player, rec.Game)
	return nil
}
