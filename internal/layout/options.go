package layout

import (
	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/locale"
)

const (
	// DefaultHighlightColor marks Saturdays and holidays.
	DefaultHighlightColor = "#dc2626"
	// DefaultPanelFill is the month background when none is chosen.
	DefaultPanelFill = "rgba(211, 211, 211, 0.5)"
	// DefaultScale shrinks the packed grid to fit typical photo sizes.
	DefaultScale = 0.75
	// DefaultWeekTopIncrement is the vertical step between week rows.
	DefaultWeekTopIncrement = 24

	defaultFontFamily = "monospace"
	defaultTextFill   = "#000000"
)

// WeekOptions configures one row of seven labels.
type WeekOptions struct {
	FontSize    float64
	FontFamily  string
	TextAlign   string
	TotalWidth  float64
	LabelWidth  float64
	DefaultFill string
	// Fills overrides the fill of the label at the same index; "" keeps DefaultFill.
	Fills []string
	Top   float64
}

// DefaultWeekOptions returns the week row used for headers and day rows.
func DefaultWeekOptions() WeekOptions {
	return WeekOptions{
		FontSize:    12,
		FontFamily:  defaultFontFamily,
		TextAlign:   "center",
		TotalWidth:  200,
		LabelWidth:  20,
		DefaultFill: defaultTextFill,
	}
}

// MonthOptions configures a single month block.
type MonthOptions struct {
	Top  float64
	Left float64

	MonthNameFontFamily string
	MonthNameFontSize   float64
	MonthNameTop        float64
	MonthNameFill       string

	RectWidth  float64
	RectHeight float64
	RectFill   string

	WeekDaysTop      float64
	WeekTopIncrement float64
	// WeekFontFamily, when set, replaces Week.FontFamily for the header and day rows.
	WeekFontFamily string
	Week           WeekOptions

	Language locale.Language
	Region   holiday.Region
	// Holidays wins over Region when both are set.
	Holidays       holiday.Policy
	HighlightColor string
}

// DefaultMonthOptions returns a month at (10, 10) with English names and no holidays.
func DefaultMonthOptions() MonthOptions {
	return MonthOptions{
		Top:                 10,
		Left:                10,
		MonthNameFontFamily: defaultFontFamily,
		MonthNameFontSize:   20,
		MonthNameTop:        10,
		MonthNameFill:       defaultTextFill,
		RectWidth:           220,
		RectHeight:          210,
		RectFill:            DefaultPanelFill,
		WeekDaysTop:         48,
		WeekTopIncrement:    DefaultWeekTopIncrement,
		Week:                DefaultWeekOptions(),
		Language:            locale.Default,
		HighlightColor:      DefaultHighlightColor,
	}
}

// MonthsOptions configures the packed grid of month blocks. Shared visual
// fields are copied into every month; Month is the template for the rest.
type MonthsOptions struct {
	TopSpacing     float64
	LeftSpacing    float64
	NumberOfMonths int
	MonthsPerRow   int
	MonthWidth     float64
	MonthHeight    float64
	Scale          float64

	Background     string
	Language       locale.Language
	Region         holiday.Region
	Holidays       holiday.Policy
	HighlightColor string
	FontFamily     string

	Month MonthOptions
}

// DefaultMonthsOptions returns twelve months, four per row.
func DefaultMonthsOptions() MonthsOptions {
	return MonthsOptions{
		TopSpacing:     20,
		LeftSpacing:    20,
		NumberOfMonths: 12,
		MonthsPerRow:   4,
		MonthWidth:     240,
		MonthHeight:    230,
		Scale:          DefaultScale,
		Background:     DefaultPanelFill,
		Language:       locale.Default,
		HighlightColor: DefaultHighlightColor,
		FontFamily:     defaultFontFamily,
		Month:          DefaultMonthOptions(),
	}
}
