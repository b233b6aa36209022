package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dataKh4n/arcadeKh4n/internal/config"
	"github.com/dataKh4n/arcadeKh4n/internal/store"
)

// session bundles what a command needs to talk to the store.
type session struct {
	ctx       context.Context
	store     *store.Store
	logger    *slog.Logger
	config    config.Config
	formatter *OutputFormatter
}

// openSession loads configuration, applies flag overrides, and opens the store.
// The caller must Close the session.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.DBPath = opts.Database
	}

	level := cfg.SlogLevel()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})).With("run", uuid.NewString(), "command", cmd.Name())

	storeOpts := append(cfg.StoreOptions(), store.WithLogger(logger))
	storeOpts = append(storeOpts, opts.StoreOptions...)

	logger.Debug("opening database", "path", cfg.DBPath)
	st, err := store.Open(cfg.DBPath, storeOpts...)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sess := &session{
		ctx:    ctx,
		store:  st,
		logger: logger,
		config: cfg,
		formatter: &OutputFormatter{
			Format:    opts.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
			Verbose:   opts.Verbose,
		},
	}
	sess.formatter.VerboseLog("Using database %s", st.Path())
	return sess, nil
}

// Close closes the store, logging rather than failing on error since the
// command's result has already been written.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing database", "error", err)
	}
}

// json reports whether output should be a JSON envelope.
func (s *session) json() bool {
	return s.formatter.Format == "json"
}
