package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/LittlePapers/calendarizer/internal/calendar"
	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/locale"
)

func newTestModel() Model {
	return NewModel(calendar.New(nil), 2024, calendar.DefaultOptions())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestNewModelDrawsCalendar(t *testing.T) {
	m := newTestModel()

	require.NoError(t, m.Err())
	require.Equal(t, 2024, m.Year())
	require.Contains(t, m.rendered, "January")
	require.Contains(t, m.rendered, "December")
	require.Nil(t, m.Init())
}

func TestUpdateChangesYear(t *testing.T) {
	m := newTestModel()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 2025, m.Year())
	m = press(t, m, runes("h"))
	m = press(t, m, runes("h"))
	require.Equal(t, 2023, m.Year())
}

func TestUpdateCyclesLayouts(t *testing.T) {
	m := newTestModel()

	var seen []calendar.Layout
	for range calendar.Layouts() {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		seen = append(seen, m.Options().Layout)
	}
	require.Equal(t, []calendar.Layout{calendar.LayoutFourByThree, calendar.LayoutSixByTwo, calendar.LayoutTreeByFour}, seen)
}

func TestUpdateCyclesLanguageAndRebuilds(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes("g"))
	require.Equal(t, locale.ES, m.Options().Language)
	require.Contains(t, m.rendered, "Enero")
	require.NotContains(t, m.rendered, "January")

	m = press(t, m, runes("g"))
	require.Equal(t, locale.EN, m.Options().Language)
}

func TestUpdateCyclesRegionsAndColors(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes("r"))
	require.Equal(t, holiday.Regions()[0], m.Options().Region)
	for range holiday.Regions() {
		m = press(t, m, runes("r"))
	}
	require.Equal(t, holiday.Region(""), m.Options().Region)

	m = press(t, m, runes("c"))
	require.Equal(t, Palette[1], m.Options().Color)
	require.Contains(t, m.View(), Palette[1].String())
}

func TestUpdateQuits(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.Empty(t, updated.(Model).View())
}

func TestUpdateHandlesWindowSizeAndHelp(t *testing.T) {
	m := newTestModel()

	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, m.width)
	require.Equal(t, 120, m.help.Width)

	require.Contains(t, m.View(), "quit")
	require.NotContains(t, m.View(), "language")
	m = press(t, m, runes("?"))
	require.Contains(t, m.View(), "language")
}

func TestUpdateIgnoresUnboundKeys(t *testing.T) {
	m := newTestModel()
	before := m.rendered

	updated, cmd := m.Update(runes("z"))
	require.Nil(t, cmd)
	require.Equal(t, before, updated.(Model).rendered)
}

func TestViewShowsErrors(t *testing.T) {
	opts := calendar.DefaultOptions()
	opts.Layout = "BROKEN"
	m := NewModel(calendar.New(nil), 2024, opts)

	require.Error(t, m.Err())
	require.Contains(t, m.View(), "unknown layout")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NoError(t, m.Err())
	require.Equal(t, calendar.LayoutTreeByFour, m.Options().Layout)
}

func TestViewHeader(t *testing.T) {
	m := newTestModel()
	view := m.View()
	require.Contains(t, view, "Calendar 2024")
	require.Contains(t, view, "TREEBYFOUR")
	require.Contains(t, view, "no region")
}
