package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// rankOrder is the leaderboard ordering shared by every query. julianday
// compares dates across zone offsets and legacy text forms at millisecond
// resolution; the raw text then orders fixed-width dates within a millisecond.
var rankOrder = []string{"score DESC", "julianday(date) ASC", "date ASC", "id ASC"}

// rankedQuery selects records in leaderboard order. Empty filters are not
// applied.
func rankedQuery(game, player string, limit int) sq.SelectBuilder {
	q := sq.Select("id", "player", "score", "game", "date").
		From(tableName).
		OrderBy(rankOrder...).
		Limit(uint64(limit))
	if game != "" {
		q = q.Where(sq.Eq{"game": game})
	}
	if player != "" {
		q = q.Where(sq.Eq{"player": player})
	}
	return q
}

// TopScores returns up to limit records in leaderboard order, restricted to
// game when it is non-empty.
//
// A limit of zero or less yields an empty result without touching the
// database. Returns an empty slice (not nil) if no records match; a failed
// query is a STORAGE_READ error, never an empty result.
func (s *Store) TopScores(ctx context.Context, game string, limit int) ([]Record, error) {
	if limit <= 0 {
		return []Record{}, nil
	}

	var records []Record
	err := s.withConn(ctx, ErrCodeRead, "top scores", func(db *sql.DB) error {
		var err error
		records, err = queryRecords(ctx, db, rankedQuery(normalizeLabel(game), "", limit))
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("top scores read", "game", game, "limit", limit, "rows", len(records))
	return records, nil
}

// PlayerBest returns the player's highest-ranked record, restricted to game
// when it is non-empty. The bool is false if the player has no records.
//
// An empty player looks up the default player label, matching AddScore.
func (s *Store) PlayerBest(ctx context.Context, player, game string) (Record, bool, error) {
	var (
		rec   Record
		found bool
	)
	err := s.withConn(ctx, ErrCodeRead, "player best", func(db *sql.DB) error {
		query, args, err := rankedQuery(normalizeLabel(game), s.playerLabel(player), 1).ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}

		rec, err = scanRecord(db.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return Record{}, false, err
	}
	return rec, found, nil
}

// Games returns every game with at least one record, sorted ascending.
func (s *Store) Games(ctx context.Context) ([]string, error) {
	games := []string{}
	err := s.withConn(ctx, ErrCodeRead, "list games", func(db *sql.DB) error {
		query, args, err := sq.Select("game").
			Distinct().
			From(tableName).
			OrderBy("game ASC").
			ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}

		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("query games: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var game string
			if err := rows.Scan(&game); err != nil {
				return fmt.Errorf("scan game: %w", err)
			}
			games = append(games, game)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate games: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return games, nil
}

// Count returns the number of records, restricted to game when it is non-empty.
func (s *Store) Count(ctx context.Context, game string) (int, error) {
	var n int
	err := s.withConn(ctx, ErrCodeRead, "count scores", func(db *sql.DB) error {
		q := sq.Select("COUNT(*)").From(tableName)
		if g := normalizeLabel(game); g != "" {
			q = q.Where(sq.Eq{"game": g})
		}
		query, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
			return fmt.Errorf("query count: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// queryRecords runs q and scans every row.
func queryRecords(ctx context.Context, db *sql.DB, q sq.SelectBuilder) ([]Record, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}
