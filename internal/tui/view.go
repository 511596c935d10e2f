package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.header()}
	if m.err != nil {
		sections = append(sections, errorStyle.Render("✗ "+m.err.Error()))
	}
	sections = append(sections, bodyStyle.Render(strings.TrimRight(m.rendered, "\n")))
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header() string {
	region := string(m.opts.Region)
	if region == "" {
		region = "no region"
	}
	badges := []string{
		string(m.opts.Layout),
		string(m.opts.Language),
		region,
		m.opts.Color.String(),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(fmt.Sprintf("Calendar %d", m.year)),
		badgeStyle.Render(strings.Join(badges, " • ")),
	)
}
