package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pwdsec/wordvault/internal/config"
	"github.com/pwdsec/wordvault/internal/hash"
	vaultlog "github.com/pwdsec/wordvault/internal/log"
	"github.com/pwdsec/wordvault/internal/store"
)

// session bundles an opened store with the configuration and logger
// that produced it. Every command opens a session at the start of its
// RunE and defers Close, so the store is released exactly once no
// matter how the command exits.
type session struct {
	cfg    *config.Config
	engine *hash.Engine
	store  *store.WordStore
	logger *slog.Logger
}

// newSession builds the configuration from flags and the optional
// config file, sets up logging, and opens the store.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	engine, err := hash.NewEngine(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	ws, err := store.Open(cfg.DatabaseDir, engine, store.DefaultOptions())
	if err != nil {
		return nil, err
	}

	logger.Debug("store opened",
		"path", ws.Path(),
		"algorithm", engine.Algorithm().String(),
	)

	return &session{
		cfg:    cfg,
		engine: engine,
		store:  ws,
		logger: logger,
	}, nil
}

// Close releases the store. Safe to defer immediately after newSession.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("failed to close store", "error", err)
	}
}

// buildConfig creates a Config from cobra command flags and the
// optional configuration file. Flag values win over file values, which
// win over defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configFlag

	// If the user explicitly specified a config file, error if it is
	// missing. Otherwise silently proceed without one.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if cf.Algorithm != "" {
			cfg.Algorithm = cf.Algorithm
		}
		if cf.Database != "" {
			cfg.DatabaseDir = cf.Database
		}
		cfg.PlaintextLogs = cf.PlaintextLogs
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		return nil, err
	}
	if algorithm != "" {
		cfg.Algorithm = algorithm
	}

	dbDir, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DatabaseDir = dbDir
	}

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	plaintext, err := cmd.Flags().GetBool("plaintext-logs")
	if err != nil {
		return nil, err
	}
	if plaintext {
		cfg.PlaintextLogs = true
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on the configuration.
// Word values are redacted unless plaintext logging is requested.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	if !cfg.PlaintextLogs {
		handler = vaultlog.NewRedactHandler(handler)
	}
	return slog.New(handler)
}
