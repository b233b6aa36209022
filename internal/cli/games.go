package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// GameSummary is one entry of the games command output.
type GameSummary struct {
	Game   string `json:"game"`
	Scores int    `json:"scores"`
}

// NewGamesCommand creates the games command.
func NewGamesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "games",
		Short:         "List games that have scores",
		Long:          `List every game with at least one score, with the number of scores recorded for it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGames(rootOpts, cmd)
		},
	}
}

func runGames(opts *RootOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	games, err := sess.store.Games(sess.ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list games", err)
	}

	summaries := make([]GameSummary, 0, len(games))
	for _, game := range games {
		n, err := sess.store.Count(sess.ctx, game)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to count scores", err)
		}
		summaries = append(summaries, GameSummary{Game: game, Scores: n})
	}

	if sess.json() {
		return sess.formatter.Success(summaries)
	}
	renderGameSummaries(cmd.OutOrStdout(), summaries)
	return nil
}

// renderGameSummaries writes a numbered list of games with score counts.
func renderGameSummaries(w io.Writer, summaries []GameSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No games with scores yet.")
		return
	}
	fmt.Fprintln(w, "Games with scores:")
	for i, s := range summaries {
		noun := "scores"
		if s.Scores == 1 {
			noun = "score"
		}
		fmt.Fprintf(w, "%d. %s (%d %s)\n", i+1, s.Game, s.Scores, noun)
	}
}
