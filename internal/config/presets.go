package config

import (
	"fmt"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

// RulesPreset represents a named rule set.
type RulesPreset string

const (
	PresetStandard RulesPreset = "standard"
	PresetQuick    RulesPreset = "quick" // short statuses, fewer actions
	PresetSiege    RulesPreset = "siege" // long shields, more actions
)

// Presets returns every preset name.
func Presets() []RulesPreset {
	return []RulesPreset{PresetStandard, PresetQuick, PresetSiege}
}

// PresetRules returns the numbers for a preset.
func PresetRules(p RulesPreset) (core.Rules, error) {
	switch p {
	case PresetStandard, "":
		return core.DefaultRules(), nil
	case PresetQuick:
		return core.Rules{MovesPerTurn: 2, StunTurns: 2, ShieldTurns: 2}, nil
	case PresetSiege:
		return core.Rules{MovesPerTurn: 4, StunTurns: 6, ShieldTurns: 8}, nil
	default:
		return core.Rules{}, fmt.Errorf("unknown rules preset %q", p)
	}
}

// ApplyRulesPreset overwrites the rule numbers with a preset's.
func ApplyRulesPreset(cfg *Config, p RulesPreset) error {
	r, err := PresetRules(p)
	if err != nil {
		return err
	}
	cfg.Rules = RulesConfig{
		Preset:       p,
		MovesPerTurn: r.MovesPerTurn,
		StunTurns:    r.StunTurns,
		ShieldTurns:  r.ShieldTurns,
	}
	return nil
}

// fillRules sets rule numbers left at zero from the configured preset.
func fillRules(cfg *Config) error {
	r, err := PresetRules(cfg.Rules.Preset)
	if err != nil {
		return err
	}
	if cfg.Rules.MovesPerTurn == 0 {
		cfg.Rules.MovesPerTurn = r.MovesPerTurn
	}
	if cfg.Rules.StunTurns == 0 {
		cfg.Rules.StunTurns = r.StunTurns
	}
	if cfg.Rules.ShieldTurns == 0 {
		cfg.Rules.ShieldTurns = r.ShieldTurns
	}
	return nil
}
