package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/topsy-trex/internal/core"
)

// KeyMap binds keys to runner actions. It doubles as the help.KeyMap for
// the help line under the play field.
type KeyMap struct {
	JumpUp   key.Binding
	JumpDown key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		JumpUp: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		JumpDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓", "dive"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action (ActionNone if unbound).
func (km KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.JumpUp):
		return core.ActionJumpUp
	case key.Matches(msg, km.JumpDown):
		return core.ActionJumpDown
	case key.Matches(msg, km.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.JumpUp, km.JumpDown, km.Restart, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
