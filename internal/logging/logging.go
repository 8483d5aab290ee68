// Package logging builds the application logger. Output goes to stderr or,
// when a file is configured, to a size-rotated log file so the terminal
// stays free for the board.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/destroy-the-flags/internal/config"
	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

// Prefix is the default logger prefix.
const Prefix = "dtf"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger from the log section of the config. The returned
// closer releases the log file, if any. When the config names no file,
// logs go to fallback.
func New(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		lvl, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	var (
		w      io.Writer = fallback
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		path := config.ExpandHome(cfg.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: creating log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		w, closer = lj, lj
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// EventName returns the event's type name, e.g. "PieceMoved".
func EventName(e core.Event) string {
	name := fmt.Sprintf("%T", e)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// EventListener returns a board listener that logs every event at debug
// level. Turn passes are logged at info.
func EventListener(logger *log.Logger) core.Listener {
	return core.ListenerFunc(func(e core.Event) {
		if tp, ok := e.(core.TurnPassed); ok {
			logger.Info("turn passed", "player", tp.Player.Name())
			return
		}
		logger.Debug(e.String(), "event", EventName(e))
	})
}

// LogBoard logs every piece of a freshly loaded board at debug level.
func LogBoard(logger *log.Logger, b *core.Board) {
	logger.Debug("board loaded", "width", b.Width(), "height", b.Height(), "pieces", len(b.Positions()))
	for _, p := range b.Positions() {
		piece, _ := b.PieceAt(p)
		logger.Debug("piece placed", "at", p.String(), "piece", piece.String())
	}
}
