package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/destroy-the-flags/internal/core"
)

// GameKeyMap defines the key bindings of the board view.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Cancel     key.Binding
	RotateCW   key.Binding
	RotateCCW  key.Binding
	FireRock   key.Binding
	FireFire   key.Binding
	FireWater  key.Binding
	FireRoot   key.Binding
	FireShield key.Binding
	FireStun   key.Binding
	FireHeal   key.Binding
	Reload     key.Binding
	SaveReplay key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.RotateCCW, k.RotateCW, k.FireRock, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.Cancel},
		{k.RotateCCW, k.RotateCW, k.FireRock, k.FireFire, k.FireWater},
		{k.FireRoot, k.FireShield, k.FireStun, k.FireHeal},
		{k.Reload, k.SaveReplay, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select/move"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "rotate cw"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "rotate ccw"),
		),
		FireRock: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fire rock"),
		),
		FireFire: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "fire"),
		),
		FireWater: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "water"),
		),
		FireRoot: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "root"),
		),
		FireShield: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "shield"),
		),
		FireStun: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "stun"),
		),
		FireHeal: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "heal"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload board"),
		),
		SaveReplay: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save replay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     GameKeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.Quit, core.ActionQuit},
			{keys.Up, core.ActionUp},
			{keys.Down, core.ActionDown},
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Select, core.ActionSelect},
			{keys.Cancel, core.ActionCancel},
			{keys.RotateCW, core.ActionRotateCW},
			{keys.RotateCCW, core.ActionRotateCCW},
			{keys.FireRock, core.ActionFireRock},
			{keys.FireFire, core.ActionFireFire},
			{keys.FireWater, core.ActionFireWater},
			{keys.FireRoot, core.ActionFireRoot},
			{keys.FireShield, core.ActionFireShield},
			{keys.FireStun, core.ActionFireStun},
			{keys.FireHeal, core.ActionFireHeal},
			{keys.Reload, core.ActionReload},
			{keys.SaveReplay, core.ActionSaveReplay},
			{keys.Help, core.ActionHelp},
		},
	}
}

// Keys returns the bindings the mapper was built with.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action, or ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// PickerKeyMap defines the key bindings of the board picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
