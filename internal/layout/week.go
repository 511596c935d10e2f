package layout

import (
	"fmt"

	"github.com/LittlePapers/calendarizer/internal/scene"
	calerrors "github.com/LittlePapers/calendarizer/pkg/errors"
)

// DaysPerWeek is the number of labels every week row must have.
const DaysPerWeek = 7

// BuildWeek lays labels out left to right so that they fill opts.TotalWidth
// exactly. The gap between labels is whatever width is left over divided
// evenly; it goes negative (labels overlap) when they do not fit.
//
// The returned group is anchored at its center and placed at (0, opts.Top),
// which centers the row inside its month panel.
func BuildWeek(labels []string, opts WeekOptions) (*scene.Group, error) {
	if len(labels) != DaysPerWeek {
		return nil, calerrors.NewLayoutError("week", fmt.Sprintf("expected %d labels, got %d", DaysPerWeek, len(labels)), nil)
	}

	lefts := justify(len(labels), opts.LabelWidth, opts.TotalWidth)
	row := scene.NewGroup(scene.OriginCenter)
	row.Top = opts.Top
	for i, text := range labels {
		row.Add(&scene.Text{
			Content:    text,
			Left:       lefts[i],
			Width:      opts.LabelWidth,
			FontFamily: opts.FontFamily,
			FontSize:   opts.FontSize,
			Fill:       labelFill(opts, i),
			TextAlign:  opts.TextAlign,
			Origin:     scene.OriginTopCenter,
		})
	}
	return row, nil
}

// Gap returns the spacing BuildWeek puts between count labels of equal width.
// count must be at least 2.
func Gap(count int, labelWidth, totalWidth float64) float64 {
	occupied := float64(count) * labelWidth
	return (totalWidth - occupied) / float64(count-1)
}

func justify(count int, labelWidth, totalWidth float64) []float64 {
	gap := Gap(count, labelWidth, totalWidth)
	lefts := make([]float64, count)
	current := 0.0
	for i := range lefts {
		lefts[i] = current
		current += labelWidth + gap
	}
	return lefts
}

func labelFill(opts WeekOptions, index int) string {
	if index < len(opts.Fills) && opts.Fills[index] != "" {
		return opts.Fills[index]
	}
	return opts.DefaultFill
}
