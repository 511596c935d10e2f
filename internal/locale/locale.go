// Package locale resolves language codes to the month and weekday names drawn
// on a calendar. Only English and Spanish tables exist; every other code falls
// back to English.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language is a supported calendar language.
type Language string

const (
	EN Language = "en"
	ES Language = "es"
)

// Default is used whenever a code cannot be matched.
const Default = EN

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
	byIndex   = []Language{EN, ES}
)

var weekdays = map[Language][7]string{
	EN: {"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	ES: {"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sa"},
}

// Month names as the platform formatter returns them; Spanish is lowercase.
var months = map[Language][12]string{
	EN: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	ES: {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

// Parse matches a BCP 47 code such as "es", "ES" or "es-MX" against the
// supported languages. It never fails.
func Parse(code string) Language {
	code = strings.TrimSpace(code)
	if code == "" {
		return Default
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Default
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(byIndex) {
		return Default
	}
	return byIndex[index]
}

// Supported reports whether lang has its own name tables.
func Supported(lang Language) bool {
	_, ok := weekdays[lang]
	return ok
}

// Languages lists the supported languages in display order.
func Languages() []Language {
	return append([]Language(nil), byIndex...)
}

func (l Language) resolved() Language {
	if Supported(l) {
		return l
	}
	return Parse(string(l))
}

func (l Language) tag() language.Tag {
	if l.resolved() == ES {
		return language.Spanish
	}
	return language.English
}

// WeekdayAbbreviations returns the seven two-letter day names, Sunday first.
func WeekdayAbbreviations(lang Language) []string {
	table := weekdays[lang.resolved()]
	return table[:]
}

// MonthName returns the full month name with its first letter upper-cased.
func MonthName(lang Language, month time.Month) string {
	lang = lang.resolved()
	if month < time.January || month > time.December {
		return ""
	}
	return capitalize(lang, months[lang][month-1])
}

func capitalize(lang Language, s string) string {
	if s == "" {
		return s
	}
	caser := cases.Title(lang.tag(), cases.NoLower)
	return caser.String(s)
}
