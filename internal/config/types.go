package config

import (
	"time"

	"github.com/LittlePapers/calendarizer/internal/calendar"
	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/layout"
	"github.com/LittlePapers/calendarizer/internal/locale"
)

// Config represents a calendar document.
type Config struct {
	Year      int      `yaml:"year,omitempty" validate:"omitempty,min=1,max=9999"`
	Layout    string   `yaml:"layout,omitempty" validate:"omitempty,layout"`
	Color     *Color   `yaml:"color,omitempty" validate:"omitempty"`
	Language  string   `yaml:"language,omitempty" validate:"omitempty,bcp47_language_tag"`
	Region    string   `yaml:"region,omitempty" validate:"omitempty,alpha,len=2"`
	Font      string   `yaml:"font,omitempty" validate:"omitempty,max=64"`
	Highlight string   `yaml:"highlight,omitempty" validate:"omitempty,fill"`
	Holidays  []string `yaml:"holidays,omitempty" validate:"omitempty,dive,holiday_date"`
	Output    Output   `yaml:"output,omitempty"`
}

// Color is the month panel background.
type Color struct {
	R int     `yaml:"r" validate:"min=0,max=255"`
	G int     `yaml:"g" validate:"min=0,max=255"`
	B int     `yaml:"b" validate:"min=0,max=255"`
	A float64 `yaml:"a" validate:"min=0,max=1"`
}

// Output holds render defaults that command-line flags may override.
type Output struct {
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=svg png json yaml"`
	Photo  string `yaml:"photo,omitempty"`
	Width  int    `yaml:"width,omitempty" validate:"omitempty,min=1,max=20000"`
	Height int    `yaml:"height,omitempty" validate:"omitempty,min=1,max=20000"`
}

// Default returns the configuration of a fresh calendar for the current year.
func Default() *Config {
	c := calendar.DefaultColor
	return &Config{
		Year:      time.Now().Year(),
		Layout:    string(calendar.LayoutTreeByFour),
		Color:     &Color{R: int(c.R), G: int(c.G), B: int(c.B), A: c.A},
		Language:  string(locale.Default),
		Highlight: layout.DefaultHighlightColor,
	}
}

// CurrentOptions converts the document into composer options. Unset fields
// take the calendar defaults.
func (c *Config) CurrentOptions() (calendar.CurrentOptions, error) {
	opts := calendar.DefaultOptions()
	if c == nil {
		return opts, nil
	}

	if c.Layout != "" {
		l, err := calendar.ParseLayout(c.Layout)
		if err != nil {
			return opts, err
		}
		opts.Layout = l
	}
	if c.Color != nil {
		opts.Color = calendar.RGBA{R: uint8(c.Color.R), G: uint8(c.Color.G), B: uint8(c.Color.B), A: c.Color.A}
	}
	if c.Language != "" {
		opts.Language = locale.Parse(c.Language)
	}
	opts.Region = holiday.ParseRegion(c.Region)
	opts.Font = c.Font
	return opts, nil
}

// HolidayPolicy returns the extra holidays listed in the document, or nil
// when there are none.
func (c *Config) HolidayPolicy() (holiday.Policy, error) {
	if c == nil || len(c.Holidays) == 0 {
		return nil, nil
	}
	table, err := holiday.ParseTable(c.Holidays)
	if err != nil {
		return nil, err
	}
	return table, nil
}
