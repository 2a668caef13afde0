package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up             key.Binding
	down           key.Binding
	pageUp         key.Binding
	pageDown       key.Binding
	enter          key.Binding
	esc            key.Binding
	tab            key.Binding
	backtab        key.Binding
	quit           key.Binding
	newChat        key.Binding
	toggleTheme    key.Binding
	export         key.Binding
	refresh        key.Binding
	docsContext    key.Binding
	cycleMode      key.Binding
	copyReply      key.Binding
	copyTranscript key.Binding
	buildInfo      key.Binding
	upload         key.Binding
	explain        key.Binding
	delete         key.Binding
	yes            key.Binding
	no             key.Binding
}

var keys = keyMap{
	up:             key.NewBinding(key.WithKeys("up", "k")),
	down:           key.NewBinding(key.WithKeys("down", "j")),
	pageUp:         key.NewBinding(key.WithKeys("pgup")),
	pageDown:       key.NewBinding(key.WithKeys("pgdown")),
	enter:          key.NewBinding(key.WithKeys("enter")),
	esc:            key.NewBinding(key.WithKeys("esc")),
	tab:            key.NewBinding(key.WithKeys("tab")),
	backtab:        key.NewBinding(key.WithKeys("shift+tab")),
	quit:           key.NewBinding(key.WithKeys("ctrl+c")),
	newChat:        key.NewBinding(key.WithKeys("ctrl+n")),
	toggleTheme:    key.NewBinding(key.WithKeys("ctrl+t")),
	export:         key.NewBinding(key.WithKeys("ctrl+e")),
	refresh:        key.NewBinding(key.WithKeys("ctrl+r")),
	docsContext:    key.NewBinding(key.WithKeys("ctrl+o")),
	cycleMode:      key.NewBinding(key.WithKeys("ctrl+k")),
	copyReply:      key.NewBinding(key.WithKeys("ctrl+y")),
	copyTranscript: key.NewBinding(key.WithKeys("ctrl+g")),
	buildInfo:      key.NewBinding(key.WithKeys("f1")),
	upload:         key.NewBinding(key.WithKeys("u")),
	explain:        key.NewBinding(key.WithKeys("x", "enter")),
	delete:         key.NewBinding(key.WithKeys("d")),
	yes:            key.NewBinding(key.WithKeys("y")),
	no:             key.NewBinding(key.WithKeys("n", "esc")),
}
