package config

import (
	_ "embed"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

//go:embed defaults/dtf.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Rules: RulesConfig{
			MovesPerTurn: core.DefaultMovesPerTurn,
			StunTurns:    core.DefaultStunTurns,
			ShieldTurns:  core.DefaultShieldTurns,
		},
		Board: BoardConfig{
			Default: "standard",
			Dir:     "~/.dtf/boards",
		},
		Storage: StorageConfig{
			Path: "~/.dtf/dtf.db",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		UI: UIConfig{
			Theme:        "default",
			AnimationFPS: 20,
			ShowPreview:  true,
			LogLines:     8,
		},
	}
}
