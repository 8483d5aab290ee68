// Package config provides YAML-based configuration loading for Destroy the
// Flags: rule numbers, board selection, storage, logging and UI settings.
package config

import (
	"fmt"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

// Config contains all application configuration.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

// RulesConfig defines the tunable rule numbers.
type RulesConfig struct {
	Preset       RulesPreset `yaml:"preset,omitempty"` // fills numbers left at zero
	MovesPerTurn int         `yaml:"moves_per_turn"`
	StunTurns    int         `yaml:"stun_turns"`
	ShieldTurns  int         `yaml:"shield_turns"`
}

// Core converts the section into engine rules.
func (r RulesConfig) Core() core.Rules {
	return core.Rules{
		MovesPerTurn: r.MovesPerTurn,
		StunTurns:    r.StunTurns,
		ShieldTurns:  r.ShieldTurns,
	}
}

// BoardConfig selects the starting board and where extra boards live.
type BoardConfig struct {
	Default string `yaml:"default"` // catalog ID or file path
	Dir     string `yaml:"dir"`     // directory scanned for board files
}

// StorageConfig locates the board library database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the logger and its optional rotating file.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // empty logs to stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// UIConfig tunes the terminal client.
type UIConfig struct {
	Theme        string `yaml:"theme"`         // default, neon, mono
	AnimationFPS int    `yaml:"animation_fps"` // projectile flight speed, cells per second
	ShowPreview  bool   `yaml:"show_preview"`  // draw the aim line of the selected piece
	LogLines     int    `yaml:"log_lines"`     // event log panel height
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	if err := c.Rules.Core().Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	switch c.UI.Theme {
	case "", "default", "neon", "mono":
	default:
		return fmt.Errorf("ui: unknown theme %q", c.UI.Theme)
	}
	if c.UI.AnimationFPS < 0 {
		return fmt.Errorf("ui: animation_fps must not be negative, got %d", c.UI.AnimationFPS)
	}
	return nil
}
