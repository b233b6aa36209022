package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dataKh4n/arcadeKh4n/internal/testutil"
)

// createTestStore creates a new store in a temp directory with a
// deterministic clock.
func createTestStore(t *testing.T, opts ...Option) (*Store, *testutil.DeterministicClock) {
	t.Helper()
	clock := testutil.NewDeterministicClock()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, append([]Option{WithClock(clock.Now)}, opts...)...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, clock
}

// mustAdd records a score and fails the test on error.
func mustAdd(t *testing.T, s *Store, player string, score int, game string) Record {
	t.Helper()
	rec, err := s.AddScore(context.Background(), player, score, game)
	require.NoError(t, err)
	return rec
}

// seedDemo records the three demo scores in order.
func seedDemo(t *testing.T, s *Store) {
	t.Helper()
	mustAdd(t, s, "Alice", 1500, "snake")
	mustAdd(t, s, "Bob", 1200, "snake")
	mustAdd(t, s, "Charlie", 2000, "quiz")
}

// labels renders records as player:score:game for compact assertions.
func labels(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String()
	}
	return out
}
