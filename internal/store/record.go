package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// dateLayout is fixed width (nanoseconds are never trimmed) so that the
// stored text sorts in chronological order.
const dateLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is one immutable row of the highscores table.
type Record struct {
	ID     int64     `json:"id"`
	Player string    `json:"player"`
	Score  int       `json:"score"`
	Game   string    `json:"game"`
	Date   time.Time `json:"date"`
}

// String renders the record as player:score:game.
func (r Record) String() string {
	return fmt.Sprintf("%s:%d:%s", r.Player, r.Score, r.Game)
}

// FormatDate renders t the way the store persists it.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// legacyLayouts are the other ISO-8601 forms found in existing files, such
// as "2024-05-01T12:00:00.123456". A fraction of any length is accepted by
// every layout; a date without a zone is UTC.
var legacyLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseDate parses a persisted date. The store writes only the fixed-width
// form, but reads any of legacyLayouts.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range legacyLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: not an ISO-8601 timestamp", s)
}

// MarshalJSON renders the date in the same fixed-width form the store
// persists and exports.
func (r Record) MarshalJSON() ([]byte, error) {
	type wire Record
	return json.Marshal(struct {
		wire
		Date string `json:"date"`
	}{wire: wire(r), Date: FormatDate(r.Date)})
}

// UnmarshalJSON accepts any date ParseDate accepts.
func (r *Record) UnmarshalJSON(data []byte) error {
	type wire Record
	var aux struct {
		wire
		Date string `json:"date"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t, err := ParseDate(aux.Date)
	if err != nil {
		return err
	}
	*r = Record(aux.wire)
	r.Date = t
	return nil
}

// Recorder is the narrow surface games use to publish and read scores.
// *Store satisfies it.
type Recorder interface {
	AddScore(ctx context.Context, player string, score int, game string) (Record, error)
	TopScores(ctx context.Context, game string, limit int) ([]Record, error)
	PlayerBest(ctx context.Context, player, game string) (Record, bool, error)
}

var _ Recorder = (*Store)(nil)

// normalizeLabel trims surrounding whitespace and applies NFC so that
// visually identical labels typed on different keyboards compare equal.
func normalizeLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// playerLabel maps an empty player to the store's default label. Writes and
// lookups go through the same mapping.
func (s *Store) playerLabel(player string) string {
	if label := normalizeLabel(player); label != "" {
		return label
	}
	return s.defaultPlayer
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec  Record
		date string
	)
	if err := row.Scan(&rec.ID, &rec.Player, &rec.Score, &rec.Game, &date); err != nil {
		return Record{}, fmt.Errorf("scan record: %w", err)
	}
	t, err := ParseDate(date)
	if err != nil {
		return Record{}, err
	}
	rec.Date = t
	return rec, nil
}
