package layout

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/locale"
	"github.com/LittlePapers/calendarizer/internal/scene"
)

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func weekRows(t *testing.T, block *scene.Group) []*scene.Group {
	t.Helper()
	require.GreaterOrEqual(t, len(block.Children), MonthFirstWeekIndex)
	rows := make([]*scene.Group, 0, len(block.Children)-MonthFirstWeekIndex)
	for _, child := range block.Children[MonthFirstWeekIndex:] {
		g, ok := child.(*scene.Group)
		require.True(t, ok)
		rows = append(rows, g)
	}
	return rows
}

func TestPartitionMonthInvariants(t *testing.T) {
	t.Parallel()

	for _, year := range []int{1900, 2000, 2023, 2024, 2026} {
		for month := time.January; month <= time.December; month++ {
			rows := PartitionMonth(year, month)
			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			last := time.Date(year, month, daysIn(year, month), 0, 0, 0, 0, time.UTC)

			require.GreaterOrEqual(t, len(rows), 4, "%d-%02d", year, month)
			require.LessOrEqual(t, len(rows), 6, "%d-%02d", year, month)

			seen := map[int]bool{}
			for _, row := range rows {
				for _, cell := range row {
					if !cell.Filled {
						continue
					}
					require.Equal(t, month, cell.Date.Month())
					require.False(t, seen[cell.Date.Day()], "day %d emitted twice", cell.Date.Day())
					seen[cell.Date.Day()] = true
				}
			}
			require.Len(t, seen, daysIn(year, month), "%d-%02d", year, month)

			leading := 0
			for _, cell := range rows[0] {
				if cell.Filled {
					break
				}
				leading++
			}
			require.Equal(t, int(first.Weekday()), leading, "%d-%02d", year, month)

			trailing := 0
			lastRow := rows[len(rows)-1]
			for col := DaysPerWeek - 1; col >= 0 && !lastRow[col].Filled; col-- {
				trailing++
			}
			require.Equal(t, 7-int(last.Weekday())-1, trailing, "%d-%02d", year, month)
		}
	}
}

func TestPartitionMonthCellsSitInTheirWeekdayColumn(t *testing.T) {
	t.Parallel()

	for _, row := range PartitionMonth(2024, time.March) {
		for col, cell := range row {
			if cell.Filled {
				require.Equal(t, time.Weekday(col), cell.Date.Weekday())
			}
		}
	}
}

func TestPartitionMonthRowCounts(t *testing.T) {
	t.Parallel()

	require.Len(t, PartitionMonth(2015, time.February), 4) // 28 days starting on a Sunday
	require.Len(t, PartitionMonth(2024, time.February), 5)
	require.Len(t, PartitionMonth(2026, time.August), 6) // 31 days starting on a Saturday

	rows := PartitionMonth(2024, time.February)
	require.Equal(t, 3, rows[0].Days())
	require.Equal(t, 5, rows[4].Days())
}

func TestPartitionMonthNormalisesOverflow(t *testing.T) {
	t.Parallel()

	rows := PartitionMonth(2024, time.Month(13))
	require.Equal(t, 2025, rows[0][3].Date.Year()) // 2025-01-01 is a Wednesday
	require.Equal(t, time.January, rows[0][3].Date.Month())
}

func TestBuildMonthStructure(t *testing.T) {
	t.Parallel()

	block, err := BuildMonth(2024, 1, DefaultMonthOptions())
	require.NoError(t, err)

	require.Equal(t, 10.0, block.Left)
	require.Equal(t, 10.0, block.Top)
	require.Equal(t, scene.OriginTopLeft, block.Origin)

	panel, ok := block.Children[MonthPanelIndex].(*scene.Rect)
	require.True(t, ok)
	require.Equal(t, 220.0, panel.Width)
	require.Equal(t, 210.0, panel.Height)
	require.Equal(t, DefaultPanelFill, panel.Fill)

	label, ok := block.Children[MonthLabelIndex].(*scene.Text)
	require.True(t, ok)
	require.Equal(t, "February", label.Content)
	require.Equal(t, 20.0, label.FontSize)
	require.Equal(t, 10.0, label.Top)

	header, ok := block.Children[MonthHeaderIndex].(*scene.Group)
	require.True(t, ok)
	require.Equal(t, 48.0, header.Top)
	headerTexts := texts(t, header)
	for i, txt := range headerTexts {
		require.Equal(t, sevenLabels[i], txt.Content)
		require.Equal(t, "#000000", txt.Fill)
	}

	rows := weekRows(t, block)
	require.Len(t, rows, 5)
	for i, row := range rows {
		require.Equal(t, 48.0+24.0*float64(i+1), row.Top)
	}

	first := texts(t, rows[0])
	require.Equal(t, []string{" ", " ", " ", " ", "1", "2", "3"}, []string{
		first[0].Content, first[1].Content, first[2].Content, first[3].Content,
		first[4].Content, first[5].Content, first[6].Content,
	})

	filled := 0
	for _, row := range rows {
		for _, txt := range texts(t, row) {
			if txt.Content != BlankDay {
				filled++
			}
		}
	}
	require.Equal(t, 29, filled)
}

func TestBuildMonthSpanishNames(t *testing.T) {
	t.Parallel()

	opts := DefaultMonthOptions()
	opts.Language = locale.ES
	block, err := BuildMonth(2024, 0, opts)
	require.NoError(t, err)

	label := block.Children[MonthLabelIndex].(*scene.Text)
	require.Equal(t, "Enero", label.Content)

	header := texts(t, block.Children[MonthHeaderIndex].(*scene.Group))
	require.Equal(t, "Do", header[0].Content)
	require.Equal(t, "Sa", header[6].Content)
}

func TestBuildMonthUnknownLanguageFallsBack(t *testing.T) {
	t.Parallel()

	opts := DefaultMonthOptions()
	opts.Language = locale.Language("xx")
	block, err := BuildMonth(2024, 2, opts)
	require.NoError(t, err)
	require.Equal(t, "March", block.Children[MonthLabelIndex].(*scene.Text).Content)
}

func TestBuildMonthHighlightsRegionHolidays(t *testing.T) {
	t.Parallel()

	opts := DefaultMonthOptions()
	opts.Region = holiday.US
	block, err := BuildMonth(2024, 0, opts)
	require.NoError(t, err)

	firstRow := texts(t, weekRows(t, block)[0])
	// 2024-01-01 is a Monday.
	require.Equal(t, "1", firstRow[1].Content)
	require.Equal(t, DefaultHighlightColor, firstRow[1].Fill)
	require.Equal(t, "2", firstRow[2].Content)
	require.Equal(t, "#000000", firstRow[2].Fill)
	require.Equal(t, "6", firstRow[6].Content)
	require.Equal(t, DefaultHighlightColor, firstRow[6].Fill)
}

func TestBuildMonthWithoutTableHighlightsOnlySaturdays(t *testing.T) {
	t.Parallel()

	for _, region := range []holiday.Region{"", "ZZ"} {
		opts := DefaultMonthOptions()
		opts.Region = region
		block, err := BuildMonth(2024, 0, opts)
		require.NoError(t, err)

		for _, row := range weekRows(t, block) {
			for col, txt := range texts(t, row) {
				if col == 6 && txt.Content != BlankDay {
					require.Equal(t, DefaultHighlightColor, txt.Fill)
				} else {
					require.Equal(t, "#000000", txt.Fill, "col %d day %q", col, txt.Content)
				}
			}
		}
	}
}

func TestBuildMonthExplicitPolicyWins(t *testing.T) {
	t.Parallel()

	opts := DefaultMonthOptions()
	opts.Region = holiday.US
	opts.HighlightColor = "gold"
	opts.Holidays = holiday.Func(func(d time.Time) bool { return d.Day() == 15 })
	block, err := BuildMonth(2024, 0, opts)
	require.NoError(t, err)

	for _, row := range weekRows(t, block) {
		for col, txt := range texts(t, row) {
			switch {
			case txt.Content == "15" || (col == 6 && txt.Content != BlankDay):
				require.Equal(t, "gold", txt.Fill)
			default:
				require.Equal(t, "#000000", txt.Fill, "day %q", txt.Content)
			}
		}
	}
}

func TestBuildMonthWeekFontOverride(t *testing.T) {
	t.Parallel()

	opts := DefaultMonthOptions()
	opts.WeekFontFamily = "Georgia"
	block, err := BuildMonth(2024, 4, opts)
	require.NoError(t, err)

	for _, child := range block.Children[MonthHeaderIndex:] {
		for _, txt := range texts(t, child.(*scene.Group)) {
			require.Equal(t, "Georgia", txt.FontFamily)
		}
	}
	require.Equal(t, "monospace", block.Children[MonthLabelIndex].(*scene.Text).FontFamily)
}

func TestBuildMonthDayLabelsAreDayNumbers(t *testing.T) {
	t.Parallel()

	block, err := BuildMonth(2023, 11, DefaultMonthOptions())
	require.NoError(t, err)

	want := 1
	for _, row := range weekRows(t, block) {
		for _, txt := range texts(t, row) {
			if txt.Content == BlankDay {
				continue
			}
			require.Equal(t, strconv.Itoa(want), txt.Content)
			want++
		}
	}
	require.Equal(t, 32, want)
}
