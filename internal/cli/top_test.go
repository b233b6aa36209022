package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTop_AllGamesGolden(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.mustRun("top")
	assertGolden(t, "top_all_games", res.Stdout)
}

func TestTop_SingleGameGolden(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.mustRun("top", "--game", "snake", "--limit", "5")
	assertGolden(t, "top_snake", res.Stdout)
}

func TestTop_Empty(t *testing.T) {
	c := newTestCLI(t)

	res := c.mustRun("top")
	assert.Equal(t, "No scores found.\n", res.Stdout)
}

func TestTop_ZeroLimit(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.mustRun("top", "--limit", "0")
	assert.Equal(t, "No scores found.\n", res.Stdout)
}

func TestTop_JSON(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.mustRun("top", "--game", "snake", "--format", "json")

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Player string `json:"player"`
			Score  int    `json:"score"`
			Game   string `json:"game"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Alice", resp.Data[0].Player)
	assert.Equal(t, "Bob", resp.Data[1].Player)
}

func TestTop_VerboseLogsToStderr(t *testing.T) {
	c := newTestCLI(t)
	c.seedDemo()

	res := c.mustRun("top", "--verbose", "--format", "json")
	assert.Contains(t, res.Stderr, "top scores read")
	assert.Contains(t, res.Stderr, "run=")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &resp), "stdout must stay valid JSON")
}

func TestTop_VerboseNamesDatabase(t *testing.T) {
	c := newTestCLI(t)

	res := c.mustRun("top", "--verbose")
	assert.Contains(t, res.Stderr, "Using database "+c.db)
	assert.NotContains(t, res.Stdout, "Using database")

	quiet := c.mustRun("top")
	assert.NotContains(t, quiet.Stderr, "Using database")
}
