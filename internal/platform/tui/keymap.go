package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-breaker/internal/input"
)

// KeyMap holds the host-level bindings and the help text for the keys the
// controller understands. Game keys are matched by input.Bindings; these
// bindings only describe them for the help bar.
type KeyMap struct {
	Move       key.Binding
	Navigate   key.Binding
	Fire       key.Binding
	Back       key.Binding
	Fullscreen key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Fire, k.Back, k.Fullscreen, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Navigate, k.Fire},
		{k.Back, k.Fullscreen, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("a", "d", "left", "right"),
			key.WithHelp("a/d", "move"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("w", "s", "up", "down"),
			key.WithHelp("w/s", "menu"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "launch/select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f11", "f"),
			key.WithHelp("f", "fullscreen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyName converts a Bubble Tea key message to the controller's key name.
func keyName(msg tea.KeyMsg) input.Key {
	if msg.Type == tea.KeySpace {
		return "space"
	}
	return input.Key(msg.String())
}
