package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"procview/internal/app"
)

// keyMap holds the two user-facing bindings. The state machine consumes the
// raw key codes; these bindings exist for the caption text.
type keyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(app.KeyToggleColor),
		key.WithHelp(app.KeyToggleColor, "change color"),
	),
	Quit: key.NewBinding(
		key.WithKeys(app.KeyQuit, "ctrl+c"),
		key.WithHelp(app.KeyQuit, "quit"),
	),
}

// caption renders the key-binding hint line shown at the bottom of the
// gauge panel.
func (k keyMap) caption(s Styles) string {
	return s.Hint.Render(k.Toggle.Help().Desc+" ") +
		s.Key.Render("<"+k.Toggle.Help().Key+">") +
		s.Hint.Render("  "+k.Quit.Help().Desc+" ") +
		s.Key.Render("<"+k.Quit.Help().Key+">")
}
