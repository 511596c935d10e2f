package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LittlePapers/calendarizer/internal/calendar"
	"github.com/LittlePapers/calendarizer/internal/config"
	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/locale"
	"github.com/LittlePapers/calendarizer/internal/render"
	calerrors "github.com/LittlePapers/calendarizer/pkg/errors"
)

// calendarFlags are the option overrides shared by render and preview.
type calendarFlags struct {
	year      int
	layout    string
	color     string
	language  string
	region    string
	font      string
	highlight string
}

func (f *calendarFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.year, "year", 0, "Calendar year (defaults to the config file, then the current year)")
	cmd.Flags().StringVar(&f.layout, "layout", "", "Months per row preset: TREEBYFOUR, FOURBYTHREE or SIXBYTWO")
	cmd.Flags().StringVar(&f.color, "color", "", `Month background, e.g. "rgba(211, 211, 211, 0.5)" or "#d3d3d3"`)
	cmd.Flags().StringVar(&f.language, "language", "", "Month and weekday names: en or es")
	cmd.Flags().StringVar(&f.region, "region", "", "Holiday region: US, ES, GB or CA")
	cmd.Flags().StringVar(&f.font, "font", "", "Font family of names and days")
	cmd.Flags().StringVar(&f.highlight, "highlight", "", "Color of Saturdays and holidays")
}

// settings is everything a command needs to build a calendar.
type settings struct {
	year     int
	opts     calendar.CurrentOptions
	composer *calendar.Composer
	output   config.Output
}

func loadConfig(path string) (*config.Config, error) {
	if strings.TrimSpace(path) == "" {
		return config.Default(), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", abs)
	}

	cfg, err := config.ParseConfig(abs)
	if err != nil {
		return nil, err
	}
	if cfg.Year == 0 {
		cfg.Year = config.Default().Year
	}
	return cfg, nil
}

// resolveSettings reads the config file and applies flag overrides on top.
func resolveSettings(root *rootFlags, f *calendarFlags) (*settings, error) {
	cfg, err := loadConfig(root.configPath)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.CurrentOptions()
	if err != nil {
		return nil, err
	}
	if err := f.apply(&opts); err != nil {
		return nil, err
	}

	year := cfg.Year
	if f.year != 0 {
		year = f.year
	}
	if year < 1 || year > 9999 {
		return nil, calerrors.NewValidationError("year", fmt.Sprintf("year %d is outside 1..9999", year), nil)
	}

	extra, err := cfg.HolidayPolicy()
	if err != nil {
		return nil, calerrors.NewValidationError("holidays", err.Error(), err)
	}

	highlight := cfg.Highlight
	if f.highlight != "" {
		if _, err := render.ParseColor(f.highlight); err != nil {
			return nil, calerrors.NewValidationError("highlight", err.Error(), err)
		}
		highlight = f.highlight
	}

	var composerOpts []calendar.Option
	if extra != nil {
		composerOpts = append(composerOpts, calendar.WithHolidays(extra))
	}
	if highlight != "" {
		composerOpts = append(composerOpts, calendar.WithHighlight(highlight))
	}

	log := root.log
	log.WithFields(map[string]any{"year": year, "config": root.configPath}).Debug("resolved calendar settings")

	return &settings{
		year:     year,
		opts:     opts,
		composer: calendar.New(log, composerOpts...),
		output:   cfg.Output,
	}, nil
}

func (f *calendarFlags) apply(opts *calendar.CurrentOptions) error {
	if f.layout != "" {
		l, err := calendar.ParseLayout(f.layout)
		if err != nil {
			return err
		}
		opts.Layout = l
	}
	if f.color != "" {
		c, err := parseRGBA(f.color)
		if err != nil {
			return err
		}
		opts.Color = c
	}
	if f.language != "" {
		opts.Language = locale.Parse(f.language)
	}
	if f.region != "" {
		opts.Region = holiday.ParseRegion(f.region)
	}
	if f.font != "" {
		opts.Font = f.font
	}
	return nil
}

func parseRGBA(s string) (calendar.RGBA, error) {
	p, err := render.ParseColor(s)
	if err != nil {
		return calendar.RGBA{}, calerrors.NewValidationError("color", err.Error(), err)
	}
	r, g, b := p.Color.Clamped().RGB255()
	return calendar.RGBA{R: r, G: g, B: b, A: math.Round(p.Opacity*1000) / 1000}, nil
}
