package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
)

func newTestPicker(t *testing.T) PickerModel {
	t.Helper()
	list, err := boards.Builtins()
	if err != nil {
		t.Fatalf("Builtins: %v", err)
	}
	return NewPickerModel(list, 100, 30, DefaultTheme())
}

func TestPickerSelectsBoard(t *testing.T) {
	m := newTestPicker(t)

	first, ok := m.Selected()
	if !ok || first.ID != "duel" {
		t.Fatalf("first board = %q, want duel", first.ID)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(PickerModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PickerModel)

	chosen, ok := m.Chosen()
	if !ok || chosen.ID != "mirrors" {
		t.Errorf("chosen = %q, %v", chosen.ID, ok)
	}
	if cmd == nil {
		t.Error("choosing should quit the picker")
	}
}

func TestPickerQuit(t *testing.T) {
	m := newTestPicker(t)
	next, cmd := m.Update(runes("q"))
	m = next.(PickerModel)
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if _, ok := m.Chosen(); ok {
		t.Error("nothing should be chosen")
	}
}

func TestPickerResizeKeepsCursor(t *testing.T) {
	m := newTestPicker(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(PickerModel).Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	m = next.(PickerModel)
	if sel, _ := m.Selected(); sel.ID != "mirrors" {
		t.Errorf("selected after resize = %q", sel.ID)
	}
}

func TestPickerViewEmpty(t *testing.T) {
	m := NewPickerModel(nil, 80, 24, DefaultTheme())
	if _, ok := m.Selected(); ok {
		t.Error("empty picker has no selection")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on an empty picker should do nothing")
	}
	if next.(PickerModel).View() == "" {
		t.Error("empty picker should still render")
	}
}

func TestPickerHighlight(t *testing.T) {
	m := newTestPicker(t).Highlight("standard")
	if sel, _ := m.Selected(); sel.ID != "standard" {
		t.Errorf("selected = %q, want standard", sel.ID)
	}
	m = m.Highlight("missing")
	if sel, _ := m.Selected(); sel.ID != "standard" {
		t.Error("unknown ID should leave the cursor alone")
	}
}
