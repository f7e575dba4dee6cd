package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	nextTab  key.Binding
	prevTab  key.Binding
	refresh  key.Binding
	copyText key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "pupil")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "pupil")),
	left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "entry")),
	right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "entry")),
	nextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "view")),
	prevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "view back")),
	refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	copyText: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy homework")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// shortHelp lists the bindings shown in the footer, in display order.
func shortHelp() []key.Binding {
	return []key.Binding{keys.up, keys.nextTab, keys.right, keys.refresh, keys.copyText, keys.quit}
}
