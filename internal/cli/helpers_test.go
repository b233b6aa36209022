package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/dataKh4n/arcadeKh4n/internal/store"
	"github.com/dataKh4n/arcadeKh4n/internal/testutil"
)

// cliResult captures one CLI invocation.
type cliResult struct {
	Stdout string
	Stderr string
	Code   int
}

// testCLI runs commands against a temp database with a deterministic clock.
type testCLI struct {
	t    *testing.T
	db   string
	opts *RootOptions
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	clock := testutil.NewDeterministicClock()
	return &testCLI{
		t:  t,
		db: filepath.Join(t.TempDir(), "scores.db"),
		opts: &RootOptions{
			StoreOptions: []store.Option{store.WithClock(clock.Now)},
		},
	}
}

// run executes args with --db pointing at the test database.
func (c *testCLI) run(args ...string) cliResult {
	c.t.Helper()
	return c.runWithInput("", args...)
}

func (c *testCLI) runWithInput(stdin string, args ...string) cliResult {
	c.t.Helper()
	var stdout, stderr bytes.Buffer
	args = append(args, "--db", c.db)
	code := execute(c.opts, args, strings.NewReader(stdin), &stdout, &stderr)
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Code: code}
}

// mustRun executes args and fails the test on a non-zero exit code.
func (c *testCLI) mustRun(args ...string) cliResult {
	c.t.Helper()
	res := c.run(args...)
	if res.Code != ExitSuccess {
		c.t.Fatalf("arcade %v exited %d: %s%s", args, res.Code, res.Stdout, res.Stderr)
	}
	return res
}

// seedDemo records the demo scores one command at a time.
func (c *testCLI) seedDemo() {
	c.t.Helper()
	c.mustRun("record", "--player", "Alice", "--score", "1500", "--game", "snake")
	c.mustRun("record", "--player", "Bob", "--score", "1200", "--game", "snake")
	c.mustRun("record", "--player", "Charlie", "--score", "2000", "--game", "quiz")
}

// assertGolden compares output against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func assertGolden(t *testing.T, name, output string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(output))
}
