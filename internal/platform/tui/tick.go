// Package tui provides the Bubble Tea hot-seat client: the board view,
// input mapping, projectile animation and the board picker.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances a projectile flight by one cell. Flight is the number
// of the flight that scheduled it; ticks for any other flight are dropped.
type TickMsg struct {
	Time   time.Time
	Flight int
}

// tickCmd returns a Bubble Tea command that sends a tick for flight after
// one frame at the given rate.
func tickCmd(fps, flight int) tea.Cmd {
	if fps <= 0 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Flight: flight}
	})
}
