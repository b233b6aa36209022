package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeed(t, `
scores:
  - player: Alice
    score: 1500
    game: snake
  - player: Bob
    score: 1200
    game: snake
`)

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, seed.Scores, 2)
	assert.Equal(t, SeedScore{Player: "Alice", Score: 1500, Game: "snake"}, seed.Scores[0])
}

func TestLoadSeedFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown field", "scores:\n  - player: A\n    points: 3\n    game: x\n", "field points not found"},
		{"no scores", "scores: []\n", "has no scores"},
		{"malformed", "scores: [\n", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeedFile(writeSeed(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read seed file")
}

func TestSeed_RecordsScores(t *testing.T) {
	c := newTestCLI(t)
	path := writeSeed(t, `
scores:
  - player: Alice
    score: 1500
    game: snake
  - player: Charlie
    score: 2000
    game: quiz
`)

	res := c.mustRun("seed", path)
	assert.Equal(t, "Recorded 2 of 2 scores.\n", res.Stdout)
	assert.Equal(t, "Games with scores:\n1. quiz\n2. snake\n", c.mustRun("games").Stdout)
}

func TestSeed_ContinuesPastBadEntries(t *testing.T) {
	c := newTestCLI(t)
	path := writeSeed(t, `
scores:
  - player: Alice
    score: 1500
    game: snake
  - player: Ghost
    score: 10
    game: ""
  - player: Bob
    score: 1200
    game: snake
`)

	res := c.run("seed", path)
	assert.Equal(t, ExitFailure, res.Code)
	assert.Equal(t, "Recorded 2 of 3 scores.\n", res.Stdout)
	assert.Contains(t, res.Stderr, "entry 2 (Ghost)")
	assert.Contains(t, res.Stderr, "1 score(s) could not be saved")
}

func TestSeed_InvalidFile(t *testing.T) {
	c := newTestCLI(t)

	res := c.run("seed", writeSeed(t, "scores: []\n"))
	assert.Equal(t, ExitCommandError, res.Code)
	assert.Contains(t, res.Stderr, "Error [E006]")
}
