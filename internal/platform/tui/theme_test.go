package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/destroy-the-flags/internal/core"
)

func TestThemesCoverEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		t.Run(name, func(t *testing.T) {
			theme, ok := ThemeByName(name)
			if !ok {
				t.Fatalf("ThemeByName(%q) not found", name)
			}
			if theme.Name != name {
				t.Errorf("Name = %q", theme.Name)
			}
			for _, c := range core.Colors() {
				if _, ok := theme.Palette[c]; !ok {
					t.Errorf("palette has no style for %s", c)
				}
			}
		})
	}
	if _, ok := ThemeByName("sepia"); ok {
		t.Error("unknown theme should not resolve")
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme())
	SetTheme(MonochromeTheme())
	if GetTheme().Name != "mono" {
		t.Errorf("GetTheme().Name = %q", GetTheme().Name)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	plain := Theme{Palette: map[core.Color]lipgloss.Style{}}
	for _, c := range core.Colors() {
		plain.Palette[c] = lipgloss.NewStyle()
	}

	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorGold)
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "V→")

	if got, want := RenderScreen(s, plain), "abcd  \nV→    "; got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestStyleFallsBackToDefault(t *testing.T) {
	theme := Theme{Palette: map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorGold:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}}

	if got := theme.Style(core.ColorGold).GetForeground(); got != lipgloss.Color("220") {
		t.Errorf("gold foreground = %v", got)
	}
	if got := theme.Style(core.ColorPath).GetForeground(); got != lipgloss.Color("7") {
		t.Errorf("unset role foreground = %v, want the default", got)
	}

	s := core.NewScreen(3, 1)
	s.DrawTextColored(0, 0, "+++", core.ColorPath)
	if got := RenderScreen(s, theme); got == "" {
		t.Error("RenderScreen dropped a row styled by the fallback")
	}
}
