// Package tui is the interactive calendar preview. Every option change
// rebuilds the whole scene through the composer and redraws it.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LittlePapers/calendarizer/internal/calendar"
	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/locale"
	"github.com/LittlePapers/calendarizer/internal/render/term"
)

// Palette is the set of backgrounds the color key cycles through.
var Palette = []calendar.RGBA{
	calendar.DefaultColor,
	{R: 255, G: 228, B: 196, A: 0.6},
	{R: 173, G: 216, B: 230, A: 0.5},
	{R: 144, G: 238, B: 144, A: 0.5},
	{R: 255, G: 255, B: 255, A: 0.8},
}

// Model contains the Bubbletea state of the preview.
type Model struct {
	composer *calendar.Composer
	year     int
	opts     calendar.CurrentOptions
	cells    term.Options

	layouts   []calendar.Layout
	languages []locale.Language
	regions   []holiday.Region

	rendered string
	err      error

	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel constructs a preview of year and draws it once.
func NewModel(composer *calendar.Composer, year int, opts calendar.CurrentOptions) Model {
	m := Model{
		composer:  composer,
		year:      year,
		opts:      opts,
		cells:     term.DefaultOptions(),
		layouts:   calendar.Layouts(),
		languages: locale.Languages(),
		regions:   append([]holiday.Region{""}, holiday.Regions()...),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Year returns the previewed year.
func (m Model) Year() int {
	return m.year
}

// Options returns the current option set.
func (m Model) Options() calendar.CurrentOptions {
	return m.opts
}

// Err returns the error of the last rebuild, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) rebuild() {
	root, err := m.composer.Compose(m.year, m.opts)
	if err != nil {
		m.err = err
		return
	}
	rendered, err := term.Render(root, m.cells)
	if err != nil {
		m.err = err
		return
	}
	m.rendered, m.err = rendered, nil
}

// next returns the element after cur in list, wrapping around. An element
// missing from list yields the first one.
func next[T comparable](list []T, cur T) T {
	for i, v := range list {
		if v == cur {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

func nextColor(cur calendar.RGBA) calendar.RGBA {
	return next(Palette, cur)
}
