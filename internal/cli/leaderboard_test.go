package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_WithGameChoiceGolden(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.runWithInput("snake\n", "leaderboard")
	require.Equal(t, ExitSuccess, res.Code, res.Stderr)
	assertGolden(t, "leaderboard_snake", res.Stdout)
}

func TestLeaderboard_EnterExits(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.runWithInput("\n", "leaderboard")
	require.Equal(t, ExitSuccess, res.Code)
	assert.True(t, strings.HasSuffix(res.Stdout, "(or press Enter to exit):\n"))
}

func TestLeaderboard_EOFExits(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.runWithInput("", "leaderboard")
	require.Equal(t, ExitSuccess, res.Code)
	assert.NotContains(t, res.Stdout, "=== Top 20")
}

func TestLeaderboard_NoPrompt(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.mustRun("leaderboard", "--no-prompt")
	assert.NotContains(t, res.Stdout, "Enter a game name")
	assert.Contains(t, res.Stdout, "=== Top 10 (All games) ===")
}

func TestLeaderboard_UnknownGame(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.runWithInput("tetris\n", "leaderboard")
	require.Equal(t, ExitSuccess, res.Code)
	assert.True(t, strings.HasSuffix(res.Stdout, "No scores found.\n"))
}

func TestLeaderboard_Empty(t *testing.T) {
	c := newTestCLI(t)

	res := c.mustRun("leaderboard")
	assert.Equal(t, "No games with scores yet.\n", res.Stdout)
}

func TestLeaderboard_JSON(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.mustRun("leaderboard", "--format", "json")
	assert.Contains(t, res.Stdout, `"games":["quiz","snake"]`)
	assert.Contains(t, res.Stdout, `"overall":[`)
}

func TestLeaderboardUnavailable(t *testing.T) {
	buf := &bytes.Buffer{}
	sess := &session{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		formatter: &OutputFormatter{Format: "text", Writer: buf},
	}

	err := leaderboardUnavailable(sess, buf, errors.New("database is locked"))
	require.NoError(t, err)
	assert.Equal(t, "No leaderboard available.\n", buf.String())
}

func TestReadLine(t *testing.T) {
	assert.Equal(t, "snake", readLine(strings.NewReader("  snake \nquiz\n")))
	assert.Equal(t, "quiz", readLine(strings.NewReader("quiz")))
	assert.Equal(t, "", readLine(strings.NewReader("")))
}
