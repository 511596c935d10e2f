package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.PrevYear):
		if m.year > 1 {
			m.year--
		}
	case key.Matches(msg, m.keys.NextYear):
		if m.year < 9999 {
			m.year++
		}
	case key.Matches(msg, m.keys.Layout):
		m.opts.Layout = next(m.layouts, m.opts.Layout)
	case key.Matches(msg, m.keys.Language):
		m.opts.Language = next(m.languages, m.opts.Language)
	case key.Matches(msg, m.keys.Region):
		m.opts.Region = next(m.regions, m.opts.Region)
	case key.Matches(msg, m.keys.Color):
		m.opts.Color = nextColor(m.opts.Color)
	default:
		return m, nil
	}

	m.rebuild()
	return m, nil
}
