package layout

import (
	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/scene"
)

// BuildGrid packs opts.NumberOfMonths month blocks, starting with January of
// year, row by row with opts.MonthsPerRow blocks per row, and scales the whole
// grid by opts.Scale. A non-positive month count or row width gives an empty
// group.
func BuildGrid(year int, opts MonthsOptions) (*scene.Group, error) {
	grid := scene.NewGroup(scene.OriginTopLeft)
	grid.Left = opts.LeftSpacing
	grid.Top = opts.TopSpacing
	if opts.Scale > 0 {
		grid.ScaleX, grid.ScaleY = opts.Scale, opts.Scale
	}

	if opts.NumberOfMonths <= 0 || opts.MonthsPerRow <= 0 {
		return grid, nil
	}

	policy := gridPolicy(opts)
	left, top := opts.LeftSpacing, opts.TopSpacing
	for i := 0; i < opts.NumberOfMonths; i++ {
		month, err := BuildMonth(year, i, monthFromGrid(opts, policy, top, left))
		if err != nil {
			return nil, err
		}
		grid.Add(month)

		left += opts.MonthWidth
		if (i+1)%opts.MonthsPerRow == 0 {
			top += opts.MonthHeight
			left = opts.LeftSpacing
		}
	}

	return grid, nil
}

// gridPolicy resolves the holiday policy once for all months.
func gridPolicy(opts MonthsOptions) holiday.Policy {
	if opts.Holidays != nil {
		return opts.Holidays
	}
	if opts.Region != "" {
		return holiday.ForRegion(opts.Region)
	}
	return holiday.Never
}

func monthFromGrid(opts MonthsOptions, policy holiday.Policy, top, left float64) MonthOptions {
	m := opts.Month
	m.Top = top
	m.Left = left
	m.Language = opts.Language
	m.Region = opts.Region
	m.Holidays = policy
	if opts.Background != "" {
		m.RectFill = opts.Background
	}
	if opts.HighlightColor != "" {
		m.HighlightColor = opts.HighlightColor
	}
	if opts.FontFamily != "" {
		m.MonthNameFontFamily = opts.FontFamily
		m.WeekFontFamily = opts.FontFamily
	}
	return m
}
