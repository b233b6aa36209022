package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataKh4n/arcadeKh4n/internal/store"
)

// BestOptions holds flags for the best command.
type BestOptions struct {
	*RootOptions
	Player string
	Game   string
}

// BestResult is the JSON payload of the best command.
type BestResult struct {
	Player string        `json:"player"`
	Found  bool          `json:"found"`
	Record *store.Record `json:"record,omitempty"`
}

// NewBestCommand creates the best command.
func NewBestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Show a player's best score",
		Long: `Show the single best score of a player, optionally in one game.

Examples:
  arcade best --player Alice
  arcade best --player Alice --game snake`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBest(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Player, "player", "p", "", "player name (required)")
	_ = cmd.MarkFlagRequired("player")
	cmd.Flags().StringVarP(&opts.Game, "game", "g", "", "restrict to one game")

	return cmd
}

func runBest(opts *BestOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	rec, found, err := sess.store.PlayerBest(sess.ctx, opts.Player, opts.Game)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read best score", err)
	}

	if sess.json() {
		result := BestResult{Player: opts.Player, Found: found}
		if found {
			result.Record = &rec
		}
		return sess.formatter.Success(result)
	}

	if !found {
		fmt.Fprintf(cmd.OutOrStdout(), "No scores for %s.\n", opts.Player)
		return nil
	}
	renderRecord(cmd.OutOrStdout(), rec)
	return nil
}
