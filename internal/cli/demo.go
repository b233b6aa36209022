package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataKh4n/arcadeKh4n/internal/store"
)

// demoScores are recorded by the demo command.
var demoScores = []struct {
	player string
	score  int
	game   string
}{
	{"Alice", 1500, "snake"},
	{"Bob", 1200, "snake"},
	{"Charlie", 2000, "quiz"},
}

// DemoResult is the JSON payload of the demo command.
type DemoResult struct {
	Overall   []store.Record `json:"overall"`
	Snake     []store.Record `json:"snake"`
	AliceBest *store.Record  `json:"alice_best,omitempty"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Record sample scores and show the boards",
		Long: `Record three sample scores (Alice/1500/snake, Bob/1200/snake,
Charlie/2000/quiz), then print the overall board, the snake board and
Alice's best score.

The sample scores are written to the configured database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	for _, d := range demoScores {
		if _, err := sess.store.AddScore(sess.ctx, d.player, d.score, d.game); err != nil {
			return WrapExitError(ExitFailure, "failed to save score", err)
		}
	}

	overall, err := sess.store.TopScores(sess.ctx, "", 10)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read leaderboard", err)
	}
	snake, err := sess.store.TopScores(sess.ctx, "snake", 5)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read leaderboard", err)
	}
	best, found, err := sess.store.PlayerBest(sess.ctx, "Alice", "")
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read best score", err)
	}

	if sess.json() {
		result := DemoResult{Overall: overall, Snake: snake}
		if found {
			result.AliceBest = &best
		}
		return sess.formatter.Success(result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== arcadeKh4n Highscore Demo ===")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Top Scores (All Games):")
	for _, r := range overall {
		fmt.Fprintf(out, "%-10s %5d %-10s %s\n", r.Player, r.Score, r.Game, store.FormatDate(r.Date))
	}

	fmt.Fprintln(out, "\nTop Snake Scores:")
	for _, r := range snake {
		fmt.Fprintf(out, "%-10s %5d\n", r.Player, r.Score)
	}

	fmt.Fprint(out, "\nAlice's Best: ")
	if found {
		renderRecord(out, best)
	} else {
		fmt.Fprintln(out, "none")
	}
	return nil
}
