package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
)

// Picker layout constants
const (
	pickerMinHeight = 3 // Minimum visible table rows
	pickerChrome    = 9 // Title, description, help and borders
)

// PickerModel is the Bubble Tea model of the board picker: a table of the
// built-in, directory and library boards.
type PickerModel struct {
	boards   []boards.Board
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	theme    Theme
	width    int
	height   int
	chosen   *boards.Board
	quitting bool
}

// NewPickerModel creates a picker over list.
func NewPickerModel(list []boards.Board, width, height int, theme Theme) PickerModel {
	m := PickerModel{
		boards: list,
		help:   help.New(),
		keys:   DefaultPickerKeyMap(),
		theme:  theme,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the board table sized to the window.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Board", Width: 12},
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 7},
		{Title: "Source", Width: 10},
	}

	// Give the name column whatever width is left
	if extra := m.width - 4 - 12 - 20 - 7 - 10 - 8; extra > 0 {
		columns[1].Width += min(extra, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-pickerChrome, pickerMinHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.TableBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(m.theme.TableSelectedFg).
		Background(m.theme.TableSelectedBg).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the board list.
func (m *PickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.boards))
	for i, b := range m.boards {
		source := b.Source
		if source != boards.SourceBuiltin && source != boards.SourceLibrary {
			source = "file"
		}
		rows[i] = table.Row{
			b.ID,
			b.Name,
			fmt.Sprintf("%dx%d", b.Width, b.Height),
			source,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.boards) {
				chosen := m.boards[i]
				m.chosen = &chosen
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.chosen != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.MenuTitle.Render("DESTROY THE FLAGS - choose a board"))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.TableBorder).
		Padding(0, 1)
	if len(m.boards) == 0 {
		b.WriteString(tableStyle.Render(m.theme.MenuDescription.Italic(true).Render("No boards found.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if sel, ok := m.Selected(); ok && sel.Description != "" {
		b.WriteString(m.theme.MenuDescription.Render(sel.Description))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the board under the table cursor.
func (m PickerModel) Selected() (boards.Board, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.boards) {
		return boards.Board{}, false
	}
	return m.boards[i], true
}

// Chosen returns the board the user picked with enter.
func (m PickerModel) Chosen() (boards.Board, bool) {
	if m.chosen == nil {
		return boards.Board{}, false
	}
	return *m.chosen, true
}

// Highlight moves the table cursor to the board with the given ID, if listed.
func (m PickerModel) Highlight(id string) PickerModel {
	for i, b := range m.boards {
		if b.ID == id {
			m.table.SetCursor(i)
			break
		}
	}
	return m
}

// RunPicker shows the board picker with the cursor on initial. ok is false
// when the user quit without choosing.
func RunPicker(list []boards.Board, initial string, width, height int, theme Theme) (chosen boards.Board, ok bool, err error) {
	p := tea.NewProgram(
		NewPickerModel(list, width, height, theme).Highlight(initial),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return boards.Board{}, false, err
	}

	m, isPicker := finalModel.(PickerModel)
	if !isPicker {
		return boards.Board{}, false, nil
	}
	chosen, ok = m.Chosen()
	return chosen, ok, nil
}
