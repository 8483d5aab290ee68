package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/destroy-the-flags/internal/core"
	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/boards"
	dtf "github.com/vovakirdan/destroy-the-flags/internal/games/dtf/core"
	"github.com/vovakirdan/destroy-the-flags/internal/games/dtf/script"
	"github.com/vovakirdan/destroy-the-flags/internal/logging"
)

// Options configures a game session.
type Options struct {
	Board     boards.Board
	Rules     dtf.Rules // base rules, the board's overrides are applied on top
	Logger    *log.Logger
	Config    core.RuntimeConfig
	Theme     Theme
	ReplayDir string // where ctrl+s writes replays, "" for ~/.dtf/replays
}

// flight is a projectile being animated. The board has already resolved
// the shot; before is the board as it was when the projectile left.
type flight struct {
	id     int
	path   []dtf.Position
	kind   dtf.Projectile
	step   int
	before *dtf.Board
}

// Model is the Bubble Tea model of a hot-seat game on one board.
type Model struct {
	opts      Options
	board     *dtf.Board
	recorder  *dtf.Recorder
	logger    *log.Logger
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	theme     Theme

	cursor   dtf.Position
	selected *dtf.Position
	flight   *flight
	flights  int         // number of flights started
	pending  []dtf.Event // events held back until the flight lands
	log      []string
	replay   []script.Action
	message  string

	width    int
	height   int
	quitting bool
}

// NewModel creates a game on opts.Board.
func NewModel(opts Options) (Model, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Rules == (dtf.Rules{}) {
		opts.Rules = dtf.DefaultRules()
	}
	if opts.Theme.Palette == nil {
		opts.Theme = GetTheme()
	}
	if opts.Config.LogLines <= 0 {
		opts.Config.LogLines = core.DefaultConfig().LogLines
	}

	m := Model{
		opts:      opts,
		logger:    opts.Logger,
		keyMapper: NewKeyMapper(DefaultGameKeyMap()),
		help:      help.New(),
		theme:     opts.Theme,
		width:     opts.Config.ScreenW,
		height:    opts.Config.ScreenH,
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// reset (re)creates the board from its starting layout.
func (m *Model) reset() error {
	b, err := m.opts.Board.New(m.opts.Rules)
	if err != nil {
		return err
	}
	m.recorder = dtf.NewRecorder()
	b.AddListener(m.recorder)
	b.AddListener(logging.EventListener(m.logger))
	logging.LogBoard(m.logger, b)

	m.board = b
	m.screen = core.NewScreen(boardScreenSize(b))
	m.cursor = dtf.P(0, 0)
	m.selected = nil
	m.flight = nil
	m.pending = nil
	m.log = nil
	m.replay = nil
	m.message = fmt.Sprintf("%s to move", b.WhoseTurn().Name())
	return nil
}

// Board returns the live board.
func (m Model) Board() *dtf.Board {
	return m.board
}

// Replay returns the actions applied since the board was loaded.
func (m Model) Replay() []script.Action {
	return m.replay
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Any other key skips the running animation.
	if m.flight != nil {
		m.land()
		return m, nil
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dx, dy := action.Delta()
		m.cursor = dtf.P(
			core.Clamp(m.cursor.X+dx, 0, m.board.Width()-1),
			core.Clamp(m.cursor.Y+dy, 0, m.board.Height()-1),
		)

	case core.ActionSelect:
		return m.selectOrMove()

	case core.ActionCancel:
		m.selected = nil

	case core.ActionRotateCW:
		return m.apply(script.RotateAction(m.target(), dtf.Clockwise))

	case core.ActionRotateCCW:
		return m.apply(script.RotateAction(m.target(), dtf.CounterClockwise))

	case core.ActionFireRock, core.ActionFireFire, core.ActionFireWater, core.ActionFireRoot,
		core.ActionFireShield, core.ActionFireStun, core.ActionFireHeal:
		kind := dtf.Projectiles()[action.FireIndex()]
		return m.apply(script.FireAction(m.target(), kind))

	case core.ActionReload:
		if err := m.reset(); err != nil {
			m.message = err.Error()
		} else {
			m.message = "board reloaded"
		}

	case core.ActionSaveReplay:
		path, err := m.saveReplay()
		if err != nil {
			m.message = fmt.Sprintf("replay not saved: %v", err)
		} else {
			m.message = "replay saved to " + path
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// target is the square the next rotate or fire acts on.
func (m Model) target() dtf.Position {
	if m.selected != nil {
		return *m.selected
	}
	return m.cursor
}

// selectOrMove picks up the piece under the cursor, drops the selection
// when the cursor is on it, or moves the selected piece to the cursor.
func (m Model) selectOrMove() (tea.Model, tea.Cmd) {
	switch {
	case m.selected == nil:
		if !m.board.IsValidMoveStart(m.cursor) {
			m.message = fmt.Sprintf("no %s piece at %s", m.board.WhoseTurn().Name(), m.cursor)
			return m, nil
		}
		sel := m.cursor
		m.selected = &sel
		m.message = ""
		return m, nil

	case *m.selected == m.cursor:
		m.selected = nil
		return m, nil
	}

	next, cmd := m.apply(script.MoveAction(*m.selected, m.cursor))
	nm := next.(Model)
	if len(nm.replay) > len(m.replay) && nm.board.IsValidMoveStart(nm.cursor) {
		sel := nm.cursor
		nm.selected = &sel
	}
	return nm, cmd
}

// apply checks and runs one action, then turns the recorded events into
// log lines, animating a projectile flight first.
func (m Model) apply(a script.Action) (tea.Model, tea.Cmd) {
	if err := script.Check(m.board, a); err != nil {
		m.message = describe(err)
		return m, nil
	}

	var before *dtf.Board
	if a.Verb == script.Fire {
		before = m.board.Clone()
	}
	if _, err := script.Apply(m.board, a); err != nil {
		m.message = describe(err)
		return m, nil
	}
	a.Line = len(m.replay) + 1
	m.replay = append(m.replay, a)
	m.message = ""
	m.logger.Debug("action applied", "action", a.String())

	if m.selected != nil && !m.board.IsValidMoveStart(*m.selected) {
		m.selected = nil
	}

	events := m.recorder.Drain()
	for i, e := range events {
		fired, ok := e.(dtf.ProjectileFired)
		if !ok || m.opts.Config.AnimationFPS <= 0 {
			continue
		}
		m.appendLog(events[:i+1]...)
		m.pending = events[i+1:]
		m.flights++
		m.flight = &flight{id: m.flights, path: fired.Path, kind: fired.Kind, before: before}
		return m, tickCmd(m.opts.Config.AnimationFPS, m.flight.id)
	}
	m.appendLog(events...)
	m.announce()
	return m, nil
}

func describe(err error) string {
	if errors.Is(err, script.ErrGameOver) {
		return "the game is over, press r to play again"
	}
	msg := err.Error()
	return strings.TrimPrefix(msg, script.ErrIllegalAction.Error()+": ")
}

// handleTick moves the projectile one cell along its path.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.flight == nil || msg.Flight != m.flight.id {
		return m, nil
	}
	m.flight.step++
	if m.flight.step >= len(m.flight.path)-1 {
		m.land()
		return m, nil
	}
	return m, tickCmd(m.opts.Config.AnimationFPS, m.flight.id)
}

// land ends the flight and releases the events it held back.
func (m *Model) land() {
	m.flight = nil
	m.appendLog(m.pending...)
	m.pending = nil
	m.announce()
}

func (m *Model) announce() {
	if o := m.board.Winner(); o != dtf.NoWinner {
		m.message = gameOverText(o)
		m.selected = nil
	}
}

func gameOverText(o dtf.Outcome) string {
	switch o {
	case dtf.GoldWins:
		return "Gold wins!"
	case dtf.RedWins:
		return "Red wins!"
	default:
		return "Draw: both flags fell"
	}
}

func (m *Model) appendLog(events ...dtf.Event) {
	for _, e := range events {
		m.log = append(m.log, e.String())
	}
	if extra := len(m.log) - m.opts.Config.LogLines; extra > 0 {
		m.log = m.log[extra:]
	}
}

// saveReplay writes the actions played so far as a script file.
func (m *Model) saveReplay() (string, error) {
	dir := m.opts.ReplayDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".dtf", "replays")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.Board.ID, timestamp))

	var sb strings.Builder
	fmt.Fprintf(&sb, "# board: %s\n", m.opts.Board.ID)
	if err := script.Write(&sb, m.replay); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return "", err
	}
	m.logger.Info("replay saved", "path", path, "actions", len(m.replay))
	return path, nil
}

// view returns the frame to draw: the board as it stood when a projectile
// left while the flight is animating, the live board otherwise.
func (m Model) view() boardView {
	v := boardView{board: m.board, cursor: m.cursor, selected: m.selected, head: -1}
	if m.flight != nil {
		v.board = m.flight.before
		v.path = m.flight.path
		v.head = m.flight.step
		if v.board == nil {
			v.board = m.board
		}
		return v
	}
	if m.opts.Config.ShowPreview && !m.board.IsGameOver() {
		v.path = m.previewPath()
	}
	return v
}

// previewPath traces the shot the target piece would fire, if it can fire.
func (m Model) previewPath() []dtf.Position {
	at := m.target()
	piece, ok := m.board.PieceAt(at)
	if !ok || piece.Owner != m.board.WhoseTurn() {
		return nil
	}
	if piece.Kind != dtf.KindSlingshot && piece.Kind != dtf.KindObelisk {
		return nil
	}
	return m.board.Trace(at, piece.Facing).Path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	drawBoard(m.screen, m.view())
	grid := RenderScreen(m.screen, m.theme)

	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", m.renderPanel())

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if o := m.board.Winner(); o != dtf.NoWinner && m.flight == nil {
		b.WriteString(m.renderGameOver(o))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Message.Render(m.message))
	b.WriteString("\n")
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// renderPanel renders the side panel: turn, the piece under the cursor
// and the event log.
func (m Model) renderPanel() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.HUDTitle.Render("DESTROY THE FLAGS"))
	b.WriteString("\n")
	b.WriteString(t.HUDLabel.Render(m.opts.Board.Name))
	b.WriteString("\n")
	b.WriteString(t.HUDSeparator.Render(strings.Repeat("─", 24)))
	b.WriteString("\n")

	turn := m.board.WhoseTurn()
	b.WriteString(t.HUDLabel.Render("Turn    "))
	b.WriteString(t.PlayerStyle(turn == dtf.Gold).Render(turn.Name()))
	b.WriteString("\n")
	b.WriteString(t.HUDLabel.Render("Actions "))
	b.WriteString(t.HUDValue.Render(fmt.Sprintf("%d/%d", m.board.MovesRemaining(), m.board.Rules().MovesPerTurn)))
	b.WriteString("\n")
	b.WriteString(t.HUDLabel.Render("Cursor  "))
	b.WriteString(t.HUDValue.Render(m.cursor.String()))
	b.WriteString("\n")
	if piece, ok := m.board.PieceAt(m.cursor); ok {
		b.WriteString(t.HUDValue.Render(describePiece(piece)))
		b.WriteString("\n")
	}

	b.WriteString(t.HUDSeparator.Render(strings.Repeat("─", 24)))
	b.WriteString("\n")
	for i, line := range m.log {
		style := t.LogLine
		if i == len(m.log)-1 {
			style = t.LogLatest
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// describePiece summarizes a piece for the side panel.
func describePiece(p dtf.Piece) string {
	if !p.IsAlive() {
		return fmt.Sprintf("%s rubble", p.Owner.Name())
	}
	parts := []string{
		fmt.Sprintf("%s %s", p.Owner.Name(), p.Kind),
		fmt.Sprintf("hp %d/%d", p.HitPoints, p.MaxHitPoints()),
		fmt.Sprintf("moves %d/%d", p.Moves, p.MovesPerTurn()),
	}
	if p.IsRotatable() {
		parts = append(parts, "facing "+p.Facing.String())
	}
	if p.Stunned {
		parts = append(parts, fmt.Sprintf("stunned %d", p.StunCounter))
	}
	if p.Shielded {
		parts = append(parts, fmt.Sprintf("shielded %d", p.ShieldCounter))
	}
	if p.Rooted {
		parts = append(parts, "rooted")
	}
	if p.Kind == dtf.KindTorch {
		if p.Lit {
			parts = append(parts, "lit")
		} else {
			parts = append(parts, "unlit")
		}
	}
	return strings.Join(parts, ", ")
}

func (m Model) renderGameOver(o dtf.Outcome) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.OverlayBorder.GetForeground()).
		Padding(0, 2)
	content := m.theme.OverlayTitle.Render(gameOverText(o)) + "\n" +
		m.theme.OverlayText.Render("r to play again, ctrl+s to save the replay, q to quit")
	return box.Render(content)
}

// Run starts the Bubble Tea program for one game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
