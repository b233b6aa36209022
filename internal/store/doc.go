// Package store provides SQLite-backed durable storage for arcade high scores.
//
// The store keeps a single append-only table of score records:
//   - highscores: one immutable row per completed game attempt
//
// Rows are created only by AddScore and destroyed only by DeleteAll. There is
// no per-record update or delete.
//
// # Ordering
//
// Every leaderboard query orders rows by:
//
//	ORDER BY score DESC, julianday(date) ASC, date ASC, id ASC
//
// An earlier achievement wins a score tie. New dates are stored as
// fixed-width UTC text, so lexical order matches chronological order among
// them. Files written by older tools may hold other ISO-8601 forms (no zone,
// a space separator, an offset, a shorter fraction); julianday puts those on
// the same time line. The id column breaks ties between rows written within
// the same clock tick.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout: Wait for locks held by other processes (default 5 seconds)
//
// # Concurrency
//
// A Store serializes its own operations with a mutex, so game sessions that
// share one Store inside a process never interleave partial writes.
// Contention with other processes is absorbed by the busy timeout; past it an
// operation fails with a STORAGE_WRITE error for writes and a STORAGE_READ
// error for queries, and IsBusy reports true for either. The store never
// retries on its own.
package store
