// Package calendar resolves the user-facing options of a calendar into grid
// options and builds the scene for one year.
package calendar

import (
	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/layout"
	"github.com/LittlePapers/calendarizer/internal/logger"
	"github.com/LittlePapers/calendarizer/internal/scene"
)

// Composer builds whole-year scenes. It keeps no state between calls, so
// every option change is a full rebuild.
type Composer struct {
	log       *logger.Logger
	holidays  holiday.Policy
	highlight string
	base      layout.MonthsOptions
}

// Option customises a Composer.
type Option func(*Composer)

// WithHolidays adds a policy evaluated alongside the region table.
func WithHolidays(p holiday.Policy) Option {
	return func(c *Composer) {
		c.holidays = p
	}
}

// WithHighlight replaces the highlight color of Saturdays and holidays.
func WithHighlight(color string) Option {
	return func(c *Composer) {
		c.highlight = color
	}
}

// WithGrid replaces the grid template the options are applied to.
func WithGrid(opts layout.MonthsOptions) Option {
	return func(c *Composer) {
		c.base = opts
	}
}

// New constructs a Composer. A nil logger discards output.
func New(log *logger.Logger, opts ...Option) *Composer {
	c := &Composer{
		log:  log.Component("calendar"),
		base: layout.DefaultMonthsOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the calendar of year using opts.
func (c *Composer) Compose(year int, opts CurrentOptions) (*scene.Group, error) {
	grid, err := c.GridOptions(opts)
	if err != nil {
		return nil, err
	}

	c.log.WithFields(map[string]any{
		"year":     year,
		"layout":   string(opts.Layout),
		"language": string(opts.Language),
		"region":   string(opts.Region),
	}).Debug("composing calendar")

	return layout.BuildGrid(year, grid)
}

// GridOptions maps opts onto the composer's grid template.
func (c *Composer) GridOptions(opts CurrentOptions) (layout.MonthsOptions, error) {
	perRow, err := opts.Layout.MonthsPerRow()
	if err != nil {
		return layout.MonthsOptions{}, err
	}

	grid := c.base
	grid.MonthsPerRow = perRow
	grid.Background = opts.Color.String()
	grid.Language = opts.Language
	grid.Region = opts.Region
	if opts.Font != "" {
		grid.FontFamily = opts.Font
	}
	if c.highlight != "" {
		grid.HighlightColor = c.highlight
	}
	grid.Holidays = c.policy(opts.Region)
	return grid, nil
}

// policy returns nil when the grid should resolve the region itself.
func (c *Composer) policy(region holiday.Region) holiday.Policy {
	if region != "" && !holiday.Known(region) {
		c.log.Warn("no holiday table for region " + string(region) + ", only Saturdays are highlighted")
	}
	if c.holidays == nil {
		return nil
	}
	if region == "" {
		return c.holidays
	}
	return holiday.Any(holiday.ForRegion(region), c.holidays)
}
