package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document accepted by the seed command.
//
//	scores:
//	  - player: Alice
//	    score: 1500
//	    game: snake
type SeedFile struct {
	Scores []SeedScore `yaml:"scores"`
}

// SeedScore is one score to record.
type SeedScore struct {
	Player string `yaml:"player"`
	Score  int    `yaml:"score"`
	Game   string `yaml:"game"`
}

// SeedResult is the JSON payload of the seed command.
type SeedResult struct {
	Recorded int      `json:"recorded"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// LoadSeedFile reads and parses a seed YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or has no scores.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(seed.Scores) == 0 {
		return nil, fmt.Errorf("seed file %s has no scores", path)
	}
	return &seed, nil
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Record scores from a YAML file",
		Long: `Record every score listed in a YAML file.

A score that cannot be saved is reported and the rest are still recorded;
the command then exits with status 1.

Example file:
  scores:
    - player: Alice
      score: 1500
      game: snake`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, args[0], cmd)
		},
	}
}

func runSeed(opts *RootOptions, path string, cmd *cobra.Command) error {
	seed, err := LoadSeedFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid seed file", err)
	}

	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	var result SeedResult
	for i, s := range seed.Scores {
		if _, err := sess.store.AddScore(sess.ctx, s.Player, s.Score, s.Game); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("entry %d (%s): %v", i+1, s.Player, err))
			sess.logger.Warn("seed entry not saved", "entry", i+1, "error", err)
			continue
		}
		result.Recorded++
	}

	if sess.json() {
		if err := sess.formatter.Success(result); err != nil {
			return err
		}
	} else {
		errOut := sess.formatter.GetErrWriter()
		for _, msg := range result.Errors {
			fmt.Fprintf(errOut, "failed to save score: %s\n", msg)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d of %d scores.\n", result.Recorded, len(seed.Scores))
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d score(s) could not be saved", result.Failed))
	}
	return nil
}
