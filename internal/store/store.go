package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - No schema yet
// 1 - highscores table with rank and player indexes
const currentSchemaVersion = 1

const tableName = "highscores"

// requiredColumns must all be present on an existing highscores table.
var requiredColumns = []string{"id", "player", "score", "game", "date"}

// Defaults applied by Open unless overridden with an Option.
const (
	DefaultBusyTimeout = 5 * time.Second
	DefaultExportLimit = 1000
	DefaultPlayer      = "Player"
)

// Store provides durable storage for arcade high scores.
// Uses SQLite with WAL mode for concurrent read access.
//
// A Store is safe for concurrent use. Every operation holds mu for the whole
// database round trip.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string

	now           func() time.Time
	busyTimeout   time.Duration
	defaultPlayer string
	exportLimit   int
	logger        *slog.Logger
}

// Option configures a Store at Open time.
type Option func(*Store)

// WithClock overrides the clock used to stamp new records.
// The returned times are converted to UTC before storage.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithBusyTimeout sets how long SQLite waits on a lock held by another
// connection before giving up.
func WithBusyTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.busyTimeout = d
		}
	}
}

// WithDefaultPlayer sets the label stored when a caller passes an empty player.
func WithDefaultPlayer(name string) Option {
	return func(s *Store) {
		if label := normalizeLabel(name); label != "" {
			s.defaultPlayer = label
		}
	}
}

// WithExportLimit caps the number of rows written by Export.
func WithExportLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.exportLimit = n
		}
	}
}

// WithLogger sets the logger used for debug-level operation logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - busy timeout for lock contention (DefaultBusyTimeout unless overridden)
//
// This function is idempotent - safe to call on every start, never destroys
// existing rows. Open either returns a fully initialized Store or a
// STORAGE_INIT error with the database closed again.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:          path,
		now:           time.Now,
		busyTimeout:   DefaultBusyTimeout,
		defaultPlayer: DefaultPlayer,
		exportLimit:   DefaultExportLimit,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Open database (creates file if doesn't exist)
	db, err := sql.Open("sqlite3", s.dsn())
	if err != nil {
		return nil, s.fail(ErrCodeInit, "open database", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, s.fail(ErrCodeInit, "connect to database", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db, s.busyTimeout); err != nil {
		db.Close()
		return nil, s.fail(ErrCodeInit, "apply pragmas", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, s.fail(ErrCodeInit, "apply schema", err)
	}

	s.db = db
	s.logger.Debug("score store opened", "path", path)
	return s, nil
}

// Close closes the database connection.
// Should be called when the store is no longer needed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// uriPathEscaper escapes the characters SQLite gives meaning to inside a
// file: URI path. Everything else is taken literally.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// dsn carries the busy timeout on the connection string so that every
// connection the pool opens gets it, not just the first one.
func (s *Store) dsn() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d", uriPathEscaper.Replace(s.path), s.busyTimeout.Milliseconds())
}

// fail wraps err as a store error for op.
func (s *Store) fail(code ErrorCode, op string, err error) error {
	return &Error{Code: code, Op: op, Path: s.path, Err: err}
}

// conn returns the open database or an error when the store has been closed
// or was never opened. Callers hold mu.
func (s *Store) conn(code ErrorCode, op string) (*sql.DB, error) {
	if s.db == nil {
		return nil, s.fail(code, op, errNotOpen)
	}
	return s.db, nil
}

// withConn runs fn against the database while holding the store lock.
func (s *Store) withConn(ctx context.Context, code ErrorCode, op string, fn func(*sql.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.conn(code, op)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return s.fail(code, op, err)
	}
	if err := fn(db); err != nil {
		return s.fail(code, op, err)
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB, busyTimeout time.Duration) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()),
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist, checks that an existing
// table is compatible, and records the schema version.
// This function is idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	if err := verifyColumns(db); err != nil {
		return err
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// verifyColumns fails if the highscores table is missing any required column.
// CREATE TABLE IF NOT EXISTS leaves a foreign table with the same name alone,
// so this is where an incompatible file is caught.
func verifyColumns(db *sql.DB) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", tableName))
	if err != nil {
		return fmt.Errorf("read table info: %w", err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("scan table info: %w", err)
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate table info: %w", err)
	}

	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("incompatible %s table: missing column %q", tableName, col)
		}
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
