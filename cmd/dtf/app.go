package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/destroy-the-flags/internal/config"
	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
	"github.com/vovakirdan/destroy-the-flags/internal/logging"
	"github.com/vovakirdan/destroy-the-flags/internal/storage"
)

// app is the state shared by the commands: configuration with the global
// flags applied, the logger and the board sources.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	closers []io.Closer
	store   *storage.Store
	catalog *boards.Catalog
}

// newApp loads the configuration and builds the logger. logFallback is
// where logs go when no log file is configured, nil for stderr.
func newApp(logFallback io.Writer) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(&cfg); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log, logFallback)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		closers: []io.Closer{closer},
		catalog: boards.NewCatalog(config.ExpandHome(cfg.Board.Dir)),
	}
	return a, nil
}

// applyFlags overrides the configuration with the global flags.
func applyFlags(cfg *config.Config) error {
	if flagPreset != "" {
		if err := config.ApplyRulesPreset(cfg, config.RulesPreset(flagPreset)); err != nil {
			return err
		}
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagBoardsDir != "" {
		cfg.Board.Dir = flagBoardsDir
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg.Validate()
}

// openLibrary opens the board library and adds it to the catalog.
// A library that cannot be opened is logged and skipped unless required.
func (a *app) openLibrary(required bool) error {
	store, err := storage.Open(a.cfg.Storage.Path)
	if err != nil {
		if required {
			return err
		}
		a.logger.Warn("board library unavailable", "path", a.cfg.Storage.Path, "err", err)
		return nil
	}
	a.store = store
	a.catalog.Library = store
	a.closers = append(a.closers, store)
	return nil
}

// Close releases the library and the log file.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "err", err)
		}
	}
}
