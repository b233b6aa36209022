package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dataKh4n/arcadeKh4n/internal/store"
)

// LeaderboardOptions holds flags for the leaderboard command.
type LeaderboardOptions struct {
	*RootOptions
	Limit     int
	GameLimit int
	NoPrompt  bool
}

// LeaderboardResult is the JSON payload of the leaderboard command.
type LeaderboardResult struct {
	Games   []string       `json:"games"`
	Overall []store.Record `json:"overall"`
}

// NewLeaderboardCommand creates the leaderboard command.
func NewLeaderboardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LeaderboardOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Browse the leaderboard interactively",
		Long: `List the games with scores and the overall top scores, then ask
for a game name and show that game's board.

Press Enter at the prompt to exit. If the leaderboard cannot be read,
"No leaderboard available." is shown instead of an error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 10, "number of overall scores")
	cmd.Flags().IntVar(&opts.GameLimit, "game-limit", 20, "number of scores for the chosen game")
	cmd.Flags().BoolVar(&opts.NoPrompt, "no-prompt", false, "do not ask for a game")

	return cmd
}

func runLeaderboard(opts *LeaderboardOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	out := cmd.OutOrStdout()

	games, err := sess.store.Games(sess.ctx)
	if err != nil {
		return leaderboardUnavailable(sess, out, err)
	}

	var overall []store.Record
	if len(games) > 0 {
		overall, err = sess.store.TopScores(sess.ctx, "", opts.Limit)
		if err != nil {
			return leaderboardUnavailable(sess, out, err)
		}
	}

	if sess.json() {
		if overall == nil {
			overall = []store.Record{}
		}
		return sess.formatter.Success(LeaderboardResult{Games: games, Overall: overall})
	}

	renderGames(out, games)
	if len(games) == 0 {
		return nil
	}

	fmt.Fprintln(out, "\nOverall top scores:")
	renderBoard(out, "", opts.Limit, overall)

	if opts.NoPrompt {
		return nil
	}

	fmt.Fprintln(out, "\nEnter a game name to view its top scores (or press Enter to exit):")
	choice := readLine(cmd.InOrStdin())
	if choice == "" {
		return nil
	}

	records, err := sess.store.TopScores(sess.ctx, choice, opts.GameLimit)
	if err != nil {
		return leaderboardUnavailable(sess, out, err)
	}
	renderBoard(out, choice, opts.GameLimit, records)
	return nil
}

// leaderboardUnavailable reports a read failure without failing the command.
func leaderboardUnavailable(sess *session, out io.Writer, err error) error {
	sess.logger.Warn("leaderboard read failed", "error", err)
	if sess.json() {
		return sess.formatter.Error(ErrCodeReadFailed, "No leaderboard available.", nil)
	}
	fmt.Fprintln(out, "No leaderboard available.")
	return nil
}

// readLine returns the first line of r, trimmed. EOF counts as an empty line.
func readLine(r io.Reader) string {
	line, _ := bufio.NewReader(r).ReadString('\n')
	return strings.TrimSpace(line)
}
