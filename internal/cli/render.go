package cli

import (
	"fmt"
	"io"

	"github.com/dataKh4n/arcadeKh4n/internal/store"
)

// renderBoard writes a leaderboard table. A per-game board omits the game
// column.
func renderBoard(w io.Writer, game string, limit int, records []store.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No scores found.")
		return
	}

	if game != "" {
		fmt.Fprintf(w, "=== Top %d for %s ===\n", limit, game)
		for _, r := range records {
			fmt.Fprintf(w, "%-12s %6d  %s\n", r.Player, r.Score, store.FormatDate(r.Date))
		}
		return
	}

	fmt.Fprintf(w, "=== Top %d (All games) ===\n", limit)
	for _, r := range records {
		fmt.Fprintf(w, "%-12s %6d  %-18s %s\n", r.Player, r.Score, r.Game, store.FormatDate(r.Date))
	}
}

// renderGames writes a numbered list of games.
func renderGames(w io.Writer, games []string) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games with scores yet.")
		return
	}
	fmt.Fprintln(w, "Games with scores:")
	for i, g := range games {
		fmt.Fprintf(w, "%d. %s\n", i+1, g)
	}
}

// renderRecord writes one record on a single line.
func renderRecord(w io.Writer, r store.Record) {
	fmt.Fprintf(w, "%s %d %s %s\n", r.Player, r.Score, r.Game, store.FormatDate(r.Date))
}
