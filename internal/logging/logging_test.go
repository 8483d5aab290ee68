package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/destroy-the-flags/internal/config"
	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

func TestNewWritesToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "debug"}, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()

	logger.Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), Prefix) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(config.LogConfig{Level: "loud"}, nil); err == nil {
		t.Error("expected error")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dtf.log")
	logger, closer, err := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("to file")
	logger.Debug("filtered")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
	if strings.Contains(string(data), "filtered") {
		t.Error("debug line written at info level")
	}
}

func TestEventListener(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(config.LogConfig{Level: "debug"}, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b, err := core.ParseBoard("GR00 **** GF00 RF00")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	b.AddListener(EventListener(logger))
	LogBoard(logger, b)
	b.MovePiece(core.P(0, 0), core.P(1, 0))

	out := buf.String()
	for _, want := range []string{"board loaded", "piece placed", "PieceMoved"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestEventName(t *testing.T) {
	if got := EventName(core.FireLit{}); got != "FireLit" {
		t.Errorf("EventName = %q", got)
	}
}
