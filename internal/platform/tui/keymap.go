package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flippity/internal/core"
)

// KeyMap defines the key bindings the driver recognizes.
type KeyMap struct {
	Play      key.Binding
	Quit      key.Binding
	Flap      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "flap"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Flap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Flap},
		{k.Quit, k.ForceQuit},
	}
}

// MapKey translates a key message to the key the game sees.
// ForceQuit is handled by the driver and never reaches the game.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Play):
		return core.KeyP
	case key.Matches(msg, k.Quit):
		return core.KeyQ
	case key.Matches(msg, k.Flap):
		return core.KeySpace
	}
	return core.KeyOther
}
