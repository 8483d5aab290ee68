package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/destroy-the-flags/internal/core"
)

// Theme contains all configurable visual styles of the game client.
type Theme struct {
	Name string

	// Palette styles the board cells by color role.
	Palette map[core.Color]lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	GoldPlayer   lipgloss.Style
	RedPlayer    lipgloss.Style

	// Event log and status line
	LogLine   lipgloss.Style
	LogLatest lipgloss.Style
	Message   lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Board picker styles
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
	TableBorder     lipgloss.Color
	TableSelectedFg lipgloss.Color
	TableSelectedBg lipgloss.Color
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorGold:       fg("220").Bold(true), // Gold
			core.ColorRed:        fg("196").Bold(true), // Bright red
			core.ColorRubble:     fg("242"),            // Gray
			core.ColorEmpty:      fg("238"),            // Dark gray
			core.ColorCursor:     fg("51").Bold(true),  // Bright cyan
			core.ColorSelected:   fg("46").Bold(true),  // Lime green
			core.ColorPath:       fg("87"),             // Pale cyan
			core.ColorProjectile: fg("231").Bold(true), // White
			core.ColorLit:        fg("208"),            // Orange
			core.ColorStatus:     fg("135"),            // Medium purple
			core.ColorFrame:      fg("240"),            // Dim gray
			core.ColorDim:        fg("245"),
		},

		HUDTitle:     fg("51").Bold(true),
		HUDLabel:     fg("245"),
		HUDValue:     fg("255"),
		HUDSeparator: fg("240"),
		HUDControls:  fg("241"),
		GoldPlayer:   fg("220").Bold(true),
		RedPlayer:    fg("196").Bold(true),

		LogLine:   fg("250"),
		LogLatest: fg("255").Bold(true),
		Message:   fg("229").Italic(true),

		OverlayBorder: fg("255"),
		OverlayTitle:  fg("226").Bold(true),
		OverlayText:   fg("255"),

		MenuTitle:       fg("229").Bold(true).MarginBottom(1),
		MenuDescription: fg("245"),
		TableBorder:     lipgloss.Color("240"),
		TableSelectedFg: lipgloss.Color("229"),
		TableSelectedBg: lipgloss.Color("57"),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Palette = clonePalette(theme.Palette)
	theme.Palette[core.ColorGold] = fg("227").Bold(true)      // Neon yellow
	theme.Palette[core.ColorRed] = fg("199").Bold(true)       // Neon pink
	theme.Palette[core.ColorPath] = fg("118")                 // Neon green
	theme.Palette[core.ColorProjectile] = fg("87").Bold(true) // Neon cyan
	theme.Palette[core.ColorStatus] = fg("171")               // Neon purple
	theme.GoldPlayer = fg("227").Bold(true)
	theme.RedPlayer = fg("199").Bold(true)
	theme.TableSelectedBg = lipgloss.Color("199")
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.Palette = clonePalette(theme.Palette)
	theme.Palette[core.ColorGold] = fg("255").Bold(true)
	theme.Palette[core.ColorRed] = fg("250").Underline(true)
	theme.Palette[core.ColorCursor] = fg("255").Bold(true)
	theme.Palette[core.ColorSelected] = fg("255").Bold(true).Reverse(true)
	theme.Palette[core.ColorPath] = fg("245")
	theme.Palette[core.ColorProjectile] = fg("255").Bold(true)
	theme.Palette[core.ColorLit] = fg("250")
	theme.Palette[core.ColorStatus] = fg("245")
	theme.GoldPlayer = fg("255").Bold(true)
	theme.RedPlayer = fg("250").Underline(true)
	theme.HUDTitle = fg("255").Bold(true)
	theme.TableSelectedFg = lipgloss.Color("0")
	theme.TableSelectedBg = lipgloss.Color("250")
	return theme
}

func clonePalette(p map[core.Color]lipgloss.Style) map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames returns the names accepted by ThemeByName.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, bool) {
	fn, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return fn(), true
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}

// PlayerStyle returns the HUD style of a player.
func (t Theme) PlayerStyle(gold bool) lipgloss.Style {
	if gold {
		return t.GoldPlayer
	}
	return t.RedPlayer
}
