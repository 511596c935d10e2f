package layout

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/locale"
	"github.com/LittlePapers/calendarizer/internal/scene"
)

// BlankDay is the label of a week cell that falls outside the month.
const BlankDay = " "

// glyphAdvance approximates a monospace glyph's width as a fraction of font size.
const glyphAdvance = 0.6

// Child positions inside a month block, in paint order.
const (
	MonthPanelIndex = iota
	MonthLabelIndex
	MonthHeaderIndex
	MonthFirstWeekIndex
)

// Cell is one slot of a week row. Filled is false for leading and trailing blanks.
type Cell struct {
	Date   time.Time
	Filled bool
}

// WeekRow holds the seven cells of one calendar week, Sunday first.
type WeekRow [DaysPerWeek]Cell

// Days returns the number of filled cells.
func (w WeekRow) Days() int {
	n := 0
	for _, c := range w {
		if c.Filled {
			n++
		}
	}
	return n
}

func nextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}

// fillWeek fills one row from cursor's weekday column up to Saturday or the
// end of the month, and returns the row with the advanced cursor.
func fillWeek(cursor time.Time) (WeekRow, time.Time) {
	var row WeekRow
	for col := int(cursor.Weekday()); col < DaysPerWeek; col++ {
		row[col] = Cell{Date: cursor, Filled: true}
		cursor = nextDay(cursor)
		if cursor.Day() == 1 {
			break
		}
	}
	return row, cursor
}

// PartitionMonth splits a month into Sunday-first week rows. Month values
// outside 1..12 roll into the neighbouring year like time.Date does.
func PartitionMonth(year int, month time.Month) []WeekRow {
	cursor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]WeekRow, 0, 6)
	for {
		row, next := fillWeek(cursor)
		rows = append(rows, row)
		cursor = next
		if cursor.Day() == 1 {
			return rows
		}
	}
}

// BuildMonth builds the block for monthIndex (0 = January) of year: a
// background panel, the month name, the weekday header and one row per week.
// Saturdays and holidays take opts.HighlightColor.
func BuildMonth(year, monthIndex int, opts MonthOptions) (*scene.Group, error) {
	first := time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC)
	policy := monthPolicy(opts)

	name := locale.MonthName(opts.Language, first.Month())
	panel := &scene.Rect{
		Width:  opts.RectWidth,
		Height: opts.RectHeight,
		Fill:   opts.RectFill,
		Origin: scene.OriginTopCenter,
	}
	label := &scene.Text{
		Content:    name,
		Top:        opts.MonthNameTop,
		Width:      textWidth(name, opts.MonthNameFontSize),
		FontFamily: opts.MonthNameFontFamily,
		FontSize:   opts.MonthNameFontSize,
		Fill:       opts.MonthNameFill,
		TextAlign:  "center",
		Origin:     scene.OriginTopCenter,
	}

	weekOpts := opts.Week
	if opts.WeekFontFamily != "" {
		weekOpts.FontFamily = opts.WeekFontFamily
	}

	headerOpts := weekOpts
	headerOpts.Top = opts.WeekDaysTop
	headerOpts.Fills = nil
	header, err := BuildWeek(locale.WeekdayAbbreviations(opts.Language), headerOpts)
	if err != nil {
		return nil, err
	}

	block := scene.NewGroup(scene.OriginTopLeft, panel, label, header)
	block.Left = opts.Left
	block.Top = opts.Top

	offset := opts.WeekDaysTop
	for _, row := range PartitionMonth(first.Year(), first.Month()) {
		offset += opts.WeekTopIncrement

		labels := make([]string, DaysPerWeek)
		fills := make([]string, DaysPerWeek)
		for col, cell := range row {
			labels[col] = BlankDay
			if !cell.Filled {
				continue
			}
			labels[col] = strconv.Itoa(cell.Date.Day())
			if cell.Date.Weekday() == time.Saturday || policy.IsHoliday(cell.Date) {
				fills[col] = opts.HighlightColor
			}
		}

		rowOpts := weekOpts
		rowOpts.Top = offset
		rowOpts.Fills = fills
		week, err := BuildWeek(labels, rowOpts)
		if err != nil {
			return nil, err
		}
		block.Add(week)
	}

	return block, nil
}

func monthPolicy(opts MonthOptions) holiday.Policy {
	if opts.Holidays != nil {
		return opts.Holidays
	}
	if opts.Region != "" {
		return holiday.ForRegion(opts.Region)
	}
	return holiday.Never
}

func textWidth(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize * glyphAdvance
}
