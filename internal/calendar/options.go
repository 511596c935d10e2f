package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/LittlePapers/calendarizer/internal/holiday"
	"github.com/LittlePapers/calendarizer/internal/locale"
	calerrors "github.com/LittlePapers/calendarizer/pkg/errors"
)

// Layout names a months-per-row preset.
type Layout string

const (
	// LayoutTreeByFour packs four months per row (three rows).
	LayoutTreeByFour Layout = "TREEBYFOUR"
	// LayoutSixByTwo packs two months per row (six rows).
	LayoutSixByTwo Layout = "SIXBYTWO"
	// LayoutFourByThree packs three months per row (four rows).
	LayoutFourByThree Layout = "FOURBYTHREE"
)

var monthsPerRow = map[Layout]int{
	LayoutTreeByFour:  4,
	LayoutSixByTwo:    2,
	LayoutFourByThree: 3,
}

// ParseLayout accepts a preset name in any case.
func ParseLayout(name string) (Layout, error) {
	l := Layout(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := monthsPerRow[l]; !ok {
		return "", calerrors.NewValidationError("layout", fmt.Sprintf("unknown layout %q", name), nil)
	}
	return l, nil
}

// MonthsPerRow returns the row width of the preset.
func (l Layout) MonthsPerRow() (int, error) {
	n, ok := monthsPerRow[l]
	if !ok {
		return 0, calerrors.NewValidationError("layout", fmt.Sprintf("unknown layout %q", string(l)), nil)
	}
	return n, nil
}

// Layouts lists the presets in a stable order.
func Layouts() []Layout {
	out := make([]Layout, 0, len(monthsPerRow))
	for l := range monthsPerRow {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		return monthsPerRow[out[i]] > monthsPerRow[out[j]]
	})
	return out
}

// RGBA is a background color with 0-255 channels and a 0-1 alpha.
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A float64
}

// String formats the color as a CSS rgba() value.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// DefaultColor is the translucent light grey of a fresh calendar.
var DefaultColor = RGBA{R: 211, G: 211, B: 211, A: 0.5}

// CurrentOptions is the user-facing option set of one calendar.
type CurrentOptions struct {
	Layout   Layout
	Color    RGBA
	Language locale.Language
	Region   holiday.Region
	Font     string
}

// DefaultOptions returns four months per row in English with no region.
func DefaultOptions() CurrentOptions {
	return CurrentOptions{
		Layout:   LayoutTreeByFour,
		Color:    DefaultColor,
		Language: locale.Default,
	}
}
