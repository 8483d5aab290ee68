// Package formats provides the board file parsers: raw board text and a
// YAML wrapper that adds a name, description and rule overrides.
package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
)

// Board is a parsed board file ready for the catalog.
type Board struct {
	ID          string
	Name        string
	Description string
	Layout      string // board text, see core.ReadBoard
	Rules       RulesOverride
	Width       int
	Height      int
}

// RulesOverride replaces the base rules' non-zero fields.
type RulesOverride struct {
	MovesPerTurn int `yaml:"moves_per_turn,omitempty"`
	StunTurns    int `yaml:"stun_turns,omitempty"`
	ShieldTurns  int `yaml:"shield_turns,omitempty"`
}

// Apply returns base with the override's non-zero fields replaced.
func (o RulesOverride) Apply(base core.Rules) core.Rules {
	if o.MovesPerTurn > 0 {
		base.MovesPerTurn = o.MovesPerTurn
	}
	if o.StunTurns > 0 {
		base.StunTurns = o.StunTurns
	}
	if o.ShieldTurns > 0 {
		base.ShieldTurns = o.ShieldTurns
	}
	return base
}

// IsZero reports whether the override changes nothing.
func (o RulesOverride) IsZero() bool {
	return o == RulesOverride{}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".dtf", ".yaml", ".yml"}
}

// validate checks the layout parses and records its size.
func validate(b *Board) error {
	parsed, err := core.ReadBoard(strings.NewReader(b.Layout), b.Rules.Apply(core.DefaultRules()))
	if err != nil {
		return err
	}
	b.Width, b.Height = parsed.Width(), parsed.Height()
	return nil
}

// New builds a board from its parts, checking the layout.
func New(id, name, description, layout string, rules RulesOverride) (Board, error) {
	b := Board{ID: id, Name: name, Description: description, Layout: layout, Rules: rules}
	if b.Name == "" {
		b.Name = id
	}
	if err := validate(&b); err != nil {
		return Board{}, fmt.Errorf("board %s: %w", id, err)
	}
	return b, nil
}

// ParseText parses a raw board text file. Leading comment lines of the
// form "# key: value" set the name and description.
func ParseText(data []byte, id string) (Board, error) {
	b := Board{ID: id, Name: id, Layout: string(data)}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		key, value, ok := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			b.Name = value
		case "description":
			b.Description = value
		}
	}

	if err := validate(&b); err != nil {
		return Board{}, fmt.Errorf("board %s: %w", id, err)
	}
	return b, nil
}

// FormatText renders a board back into the raw text format with its
// name and description as header comments.
func FormatText(b Board) []byte {
	var buf bytes.Buffer
	if b.Name != "" {
		fmt.Fprintf(&buf, "# name: %s\n", b.Name)
	}
	if b.Description != "" {
		fmt.Fprintf(&buf, "# description: %s\n", b.Description)
	}
	for _, row := range LayoutRows(b.Layout) {
		buf.WriteString(row)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// LayoutRows returns the non-comment, non-blank lines of a layout.
func LayoutRows(layout string) []string {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}
