package store

import (
	"context"
	"database/sql"
	"fmt"
)

// AddScore appends a new record and returns it with its assigned id.
//
// Player and game are trimmed and NFC-normalized. An empty player is stored
// under the default player label; an empty game fails with ErrEmptyGame and
// nothing is written. The timestamp comes from the store clock, in UTC.
//
// Failures to commit are STORAGE_WRITE errors, including lock contention
// that outlasts the busy timeout. The store does not retry.
func (s *Store) AddScore(ctx context.Context, player string, score int, game string) (Record, error) {
	game = normalizeLabel(game)
	if game == "" {
		return Record{}, ErrEmptyGame
	}

	rec := Record{
		Player: s.playerLabel(player),
		Score:  score,
		Game:   game,
	}

	err := s.withConn(ctx, ErrCodeWrite, "add score", func(db *sql.DB) error {
		// Stamp under the lock so ids and dates advance together.
		date := FormatDate(s.now())

		result, err := db.ExecContext(ctx, `
			INSERT INTO highscores (player, score, game, date)
			VALUES (?, ?, ?, ?)
		`, rec.Player, rec.Score, rec.Game, date)
		if err != nil {
			return fmt.Errorf("insert: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}

		rec.ID = id
		rec.Date, err = ParseDate(date)
		return err
	})
	if err != nil {
		return Record{}, err
	}

	s.logger.Debug("score recorded",
		"id", rec.ID,
		"player", rec.Player,
		"score", rec.Score,
		"game", rec.Game,
	)
	return rec, nil
}

// DeleteAll irreversibly removes every record. Ids are not reused afterwards.
// Confirmation is the caller's job.
func (s *Store) DeleteAll(ctx context.Context) error {
	var removed int64

	err := s.withConn(ctx, ErrCodeWrite, "delete all scores", func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, "DELETE FROM highscores")
		if err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		removed, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("scores deleted", "rows", removed)
	return nil
}
