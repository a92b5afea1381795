package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/textris/internal/session"
)

// KeyMap defines the key bindings of the game screen.
// Every game key resolves to a session command, so the TUI drives the
// engine through the same dispatcher as the line protocol.
type KeyMap struct {
	Piece   key.Binding
	Rotate  key.Binding
	Left    key.Binding
	Right   key.Binding
	Down    key.Binding
	Break   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Piece, k.Rotate, k.Left, k.Right, k.Down, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Piece, k.Rotate, k.Break},
		{k.Left, k.Right, k.Down},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Piece: key.NewBinding(
			key.WithKeys("i", "o", "t", "s", "z", "j", "l"),
			key.WithHelp("i/o/t/s/z/j/l", "spawn piece"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "x"),
			key.WithHelp("up/x", "rotate"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "move right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "drop one row"),
		),
		Break: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter/c", "clear rows"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Resolve translates a key message to a session command and its argument.
// Keys without a game meaning return session.CommandNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) (session.Command, string) {
	switch {
	case key.Matches(msg, k.Quit):
		return session.CommandExit, ""
	case key.Matches(msg, k.Piece):
		return session.CommandPiece, strings.ToUpper(msg.String())
	case key.Matches(msg, k.Rotate):
		return session.CommandRotate, ""
	case key.Matches(msg, k.Left):
		return session.CommandLeft, ""
	case key.Matches(msg, k.Right):
		return session.CommandRight, ""
	case key.Matches(msg, k.Down):
		return session.CommandDown, ""
	case key.Matches(msg, k.Break):
		return session.CommandBreak, ""
	}
	return session.CommandNone, ""
}
