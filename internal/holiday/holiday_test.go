package holiday

import (
	"sync"
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNeverReportsNothing(t *testing.T) {
	t.Parallel()

	for d := day(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		require.False(t, Never.IsHoliday(d))
	}
}

func TestFuncAdapter(t *testing.T) {
	t.Parallel()

	p := Func(func(d time.Time) bool { return d.Day() == 13 })
	require.True(t, p.IsHoliday(day(2024, time.March, 13)))
	require.False(t, p.IsHoliday(day(2024, time.March, 14)))

	var nilFunc Func
	require.False(t, nilFunc.IsHoliday(day(2024, time.March, 13)))
}

func TestForRegionKnownFixedHolidays(t *testing.T) {
	t.Parallel()

	cases := []struct {
		region Region
		date   time.Time
	}{
		{region: US, date: day(2024, time.January, 1)},
		{region: US, date: day(2024, time.July, 4)},
		{region: US, date: day(2024, time.December, 25)},
		{region: ES, date: day(2024, time.January, 1)},
		{region: ES, date: day(2024, time.October, 12)},
		{region: GB, date: day(2024, time.December, 25)},
		{region: CA, date: day(2024, time.July, 1)},
	}

	for _, tc := range cases {
		t.Run(string(tc.region)+"/"+tc.date.Format("01-02"), func(t *testing.T) {
			t.Parallel()
			require.True(t, ForRegion(tc.region).IsHoliday(tc.date))
		})
	}
}

func TestForRegionOrdinaryDay(t *testing.T) {
	t.Parallel()

	require.False(t, ForRegion(US).IsHoliday(day(2024, time.March, 12)))
}

func TestForRegionCountsObservedDates(t *testing.T) {
	t.Parallel()

	us := ForRegion(US)
	// New Year's Day 2022 fell on a Saturday and 2023 on a Sunday.
	require.True(t, us.IsHoliday(day(2021, time.December, 31)))
	require.True(t, us.IsHoliday(day(2023, time.January, 2)))
	require.False(t, us.IsHoliday(day(2023, time.January, 3)))
}

func TestForRegionIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	require.True(t, ForRegion(Region("us")).IsHoliday(day(2024, time.July, 4)))
	require.Equal(t, US, ParseRegion(" us "))
}

func TestForRegionUnknownIsNever(t *testing.T) {
	t.Parallel()

	require.Equal(t, Never, ForRegion(Region("ZZ")))
	require.Equal(t, Never, ForRegion(""))
	require.False(t, Known("ZZ"))
	require.True(t, Known(US))
}

func TestRegionsListsBuiltins(t *testing.T) {
	t.Parallel()

	regions := Regions()
	require.Subset(t, regions, []Region{CA, ES, GB, US})
	for i := 1; i < len(regions); i++ {
		require.Less(t, regions[i-1], regions[i])
	}
}

func TestRegisterRegion(t *testing.T) {
	t.Parallel()

	founders := &cal.Holiday{Name: "Founders Day", Type: cal.ObservancePublic, Month: time.May, Day: 17, Func: cal.CalcDayOfMonth}
	require.NoError(t, RegisterRegion("xq", founders))
	require.True(t, ForRegion("XQ").IsHoliday(day(2025, time.May, 17)))

	require.Error(t, RegisterRegion("XQ", founders))
	require.Error(t, RegisterRegion("", founders))
	require.Error(t, RegisterRegion("XR"))
}

func TestRegionPolicyConcurrentLookups(t *testing.T) {
	t.Parallel()

	p := ForRegion(US)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := day(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
				_ = p.IsHoliday(d)
			}
		}()
	}
	wg.Wait()
	require.True(t, p.IsHoliday(day(2024, time.January, 1)))
}

func TestParseTable(t *testing.T) {
	t.Parallel()

	table, err := ParseTable([]string{"12-24", " 2024-06-03 ", "02-29"})
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	require.True(t, table.IsHoliday(day(2023, time.December, 24)))
	require.True(t, table.IsHoliday(day(2031, time.December, 24)))
	require.True(t, table.IsHoliday(day(2024, time.June, 3)))
	require.False(t, table.IsHoliday(day(2025, time.June, 3)))
	require.True(t, table.IsHoliday(day(2024, time.February, 29)))
	require.False(t, table.IsHoliday(day(2024, time.February, 28)))
}

func TestParseTableRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, entry := range []string{"13-01", "christmas", "2024-02-30", "1-2", ""} {
		_, err := ParseTable([]string{entry})
		require.Error(t, err, entry)
	}

	var nilTable *Table
	require.False(t, nilTable.IsHoliday(day(2024, time.January, 1)))
	require.Zero(t, nilTable.Len())
}

func TestAnyCombinesPolicies(t *testing.T) {
	t.Parallel()

	table, err := ParseTable([]string{"12-24"})
	require.NoError(t, err)

	combined := Any(ForRegion(US), nil, table)
	require.True(t, combined.IsHoliday(day(2024, time.December, 24)))
	require.True(t, combined.IsHoliday(day(2024, time.December, 25)))
	require.False(t, combined.IsHoliday(day(2024, time.December, 23)))

	require.Equal(t, Never, Any())
	require.Equal(t, Policy(table), Any(nil, table))
}
