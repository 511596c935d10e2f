package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevYear key.Binding
	NextYear key.Binding
	Layout   key.Binding
	Language key.Binding
	Region   key.Binding
	Color    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevYear: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous year")),
		NextYear: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next year")),
		Layout:   key.NewBinding(key.WithKeys("tab", "L"), key.WithHelp("tab", "layout")),
		Language: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "language")),
		Region:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "region")),
		Color:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevYear, k.NextYear, k.Layout, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevYear, k.NextYear},
		{k.Layout, k.Language, k.Region, k.Color},
		{k.Help, k.Quit},
	}
}
