package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want Language
	}{
		{code: "en", want: EN},
		{code: "EN", want: EN},
		{code: "en-US", want: EN},
		{code: "es", want: ES},
		{code: "ES", want: ES},
		{code: "es-ES", want: ES},
		{code: "es-MX", want: ES},
		{code: "", want: EN},
		{code: "  ", want: EN},
		{code: "fr", want: EN},
		{code: "not a tag!", want: EN},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Parse(tc.code))
		})
	}
}

func TestMonthNameCapitalizesFirstLetter(t *testing.T) {
	t.Parallel()

	require.Equal(t, "January", MonthName(EN, time.January))
	require.Equal(t, "Enero", MonthName(ES, time.January))
	require.Equal(t, "Septiembre", MonthName(ES, time.September))
	require.Equal(t, "December", MonthName(EN, time.December))
}

func TestMonthNameFallsBackForUnknownLanguage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "March", MonthName(Language("de"), time.March))
	require.Equal(t, "Marzo", MonthName(Language("es-AR"), time.March))
	require.Empty(t, MonthName(EN, time.Month(13)))
}

func TestWeekdayAbbreviations(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, WeekdayAbbreviations(EN))
	require.Equal(t, []string{"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sa"}, WeekdayAbbreviations(ES))
	require.Equal(t, WeekdayAbbreviations(EN), WeekdayAbbreviations(Language("ja")))
}

func TestWeekdayAbbreviationsReturnsCopy(t *testing.T) {
	t.Parallel()

	days := WeekdayAbbreviations(EN)
	days[0] = "XX"
	require.Equal(t, "Su", WeekdayAbbreviations(EN)[0])
}

func TestLanguagesAndSupported(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Language{EN, ES}, Languages())
	require.True(t, Supported(ES))
	require.False(t, Supported(Language("fr")))
}
