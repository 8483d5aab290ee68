package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLBoard represents the YAML structure for a board file.
type YAMLBoard struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Rules       RulesOverride `yaml:"rules,omitempty"`
	Rows        []string      `yaml:"rows"`
}

// ParseYAML parses a YAML board file. fallbackID is used when the file
// has no id.
func ParseYAML(data []byte, fallbackID string) (Board, error) {
	var yb YAMLBoard
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return Board{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yb.Rows) == 0 {
		return Board{}, fmt.Errorf("board %s: no rows", fallbackID)
	}

	b := Board{
		ID:          yb.ID,
		Name:        yb.Name,
		Description: yb.Description,
		Layout:      strings.Join(yb.Rows, "\n") + "\n",
		Rules:       yb.Rules,
	}
	if b.ID == "" {
		b.ID = fallbackID
	}
	if b.Name == "" {
		b.Name = b.ID
	}
	if err := validate(&b); err != nil {
		return Board{}, fmt.Errorf("board %s: %w", b.ID, err)
	}
	return b, nil
}

// FormatYAML renders a board as a YAML board file.
func FormatYAML(b Board) ([]byte, error) {
	yb := YAMLBoard{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Rules:       b.Rules,
		Rows:        LayoutRows(b.Layout),
	}
	data, err := yaml.Marshal(&yb)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
