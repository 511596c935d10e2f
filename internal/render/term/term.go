// Package term draws a scene as a grid of terminal cells.
package term

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/LittlePapers/calendarizer/internal/render"
	"github.com/LittlePapers/calendarizer/internal/scene"
	calerrors "github.com/LittlePapers/calendarizer/pkg/errors"
)

// Options maps scene units onto cells.
type Options struct {
	// CellWidth and CellHeight are the scene units covered by one cell.
	CellWidth  float64
	CellHeight float64
	// Plain drops all colors.
	Plain bool
}

// DefaultOptions fits a 0.75-scaled calendar: three cells per day column and
// one line per week row.
func DefaultOptions() Options {
	return Options{CellWidth: 7.5, CellHeight: 18}
}

var paper = colorful.Color{R: 1, G: 1, B: 1}

type cell struct {
	r  rune
	fg string
	bg string
}

// Render returns root drawn as lines of text. Rectangles paint cell
// backgrounds and labels are placed on the cell nearest their anchor.
func Render(root scene.Node, opts Options) (string, error) {
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		opts.CellWidth, opts.CellHeight = DefaultOptions().CellWidth, DefaultOptions().CellHeight
	}

	frame := render.Frame(root)
	cols := int(math.Ceil(frame.MaxX/opts.CellWidth)) + 1
	rows := int(math.Ceil(frame.MaxY/opts.CellHeight)) + 1
	if cols <= 0 || rows <= 0 {
		return "", nil
	}

	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
		for j := range grid[i] {
			grid[i][j].r = ' '
		}
	}

	for _, leaf := range scene.Leaves(root) {
		switch v := leaf.Node.(type) {
		case *scene.Rect:
			fill, err := render.ParseColor(v.Fill)
			if err != nil {
				return "", calerrors.NewRenderError("term", err)
			}
			if !fill.Visible() {
				continue
			}
			bg := fill.Over(paper).Hex()
			c0, c1 := cellIndex(leaf.Box.MinX, opts.CellWidth), cellIndex(leaf.Box.MaxX, opts.CellWidth)
			r0, r1 := cellIndex(leaf.Box.MinY, opts.CellHeight), cellIndex(leaf.Box.MaxY, opts.CellHeight)
			for r := max(r0, 0); r < min(r1, rows); r++ {
				for c := max(c0, 0); c < min(c1, cols); c++ {
					grid[r][c].bg = bg
				}
			}
		case *scene.Text:
			if strings.TrimSpace(v.Content) == "" {
				continue
			}
			fill, err := render.ParseColor(v.Fill)
			if err != nil {
				return "", calerrors.NewRenderError("term", err)
			}
			n := utf8.RuneCountInString(v.Content)
			var start int
			switch v.TextAlign {
			case "left":
				start = cellIndex(leaf.Box.MinX, opts.CellWidth)
			case "right":
				start = cellIndex(leaf.Box.MaxX, opts.CellWidth) - n
			default:
				start = cellIndex((leaf.Box.MinX+leaf.Box.MaxX)/2, opts.CellWidth) - n/2
			}
			row := cellIndex((leaf.Box.MinY+leaf.Box.MaxY)/2-opts.CellHeight/2, opts.CellHeight)
			if row < 0 || row >= rows {
				continue
			}
			col := start
			for _, r := range v.Content {
				if col >= 0 && col < cols {
					grid[row][col].r = r
					grid[row][col].fg = fill.Hex()
				}
				col++
			}
		}
	}

	lines := make([]string, rows)
	for i, line := range grid {
		lines[i] = strings.TrimRight(paintLine(line, opts.Plain), " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n", nil
}

func cellIndex(v, size float64) int {
	return int(math.Round(v / size))
}

// paintLine joins runs of equally styled cells into single lipgloss spans.
func paintLine(line []cell, plain bool) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		j := i
		var run strings.Builder
		for j < len(line) && line[j].fg == line[i].fg && line[j].bg == line[i].bg {
			run.WriteRune(line[j].r)
			j++
		}
		if plain || (line[i].fg == "" && line[i].bg == "") {
			b.WriteString(run.String())
		} else {
			style := lipgloss.NewStyle()
			if line[i].fg != "" {
				style = style.Foreground(lipgloss.Color(line[i].fg))
			}
			if line[i].bg != "" {
				style = style.Background(lipgloss.Color(line[i].bg))
			}
			b.WriteString(style.Render(run.String()))
		}
		i = j
	}
	return b.String()
}
