package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Copy    key.Binding
	Pause   key.Binding
	Play    key.Binding
	Fast    key.Binding
	Slow    key.Binding
	Normal  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy contract")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Play:    key.NewBinding(key.WithKeys("g", " ", "space"), key.WithHelp("g/space", "play")),
		Fast:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fast")),
		Slow:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "slow")),
		Normal:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "normal speed")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Pause, k.Play, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.Refresh},
		{k.Pause, k.Play},
		{k.Fast, k.Slow, k.Normal},
		{k.Help, k.Quit},
	}
}
