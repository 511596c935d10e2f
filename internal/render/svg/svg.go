// Package svg writes a scene as an SVG document.
package svg

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/LittlePapers/calendarizer/internal/render"
	"github.com/LittlePapers/calendarizer/internal/scene"
	calerrors "github.com/LittlePapers/calendarizer/pkg/errors"
)

// Render writes root to w. Groups become <g> elements and leaves are
// emitted in absolute canvas coordinates.
func Render(w io.Writer, root scene.Node, opts render.Options) error {
	width, height := render.CanvasSize(root, opts)

	var photo string
	if opts.Photo != "" {
		uri, err := dataURI(opts.Photo)
		if err != nil {
			return calerrors.NewRenderError(string(render.FormatSVG), err)
		}
		photo = uri
	}

	canvas := svgo.New(w)
	canvas.Start(width, height)
	canvas.Title("Calendar")
	if photo != "" {
		canvas.Image(0, 0, width, height, photo, `preserveAspectRatio="xMidYMid slice"`)
	}

	p := painter{canvas: canvas}
	if err := p.node(root, scene.Identity); err != nil {
		return calerrors.NewRenderError(string(render.FormatSVG), err)
	}
	canvas.End()
	return nil
}

type painter struct {
	canvas *svgo.SVG
}

func (p painter) node(n scene.Node, toRoot scene.Transform) error {
	switch v := n.(type) {
	case *scene.Group:
		inner := v.Local().Then(toRoot)
		p.canvas.Group()
		for _, child := range v.Children {
			if child == nil {
				continue
			}
			if err := p.node(child, inner); err != nil {
				return err
			}
		}
		p.canvas.Gend()
		return nil
	case *scene.Rect:
		return p.rect(v, toRoot)
	case *scene.Text:
		return p.text(v, toRoot)
	default:
		return fmt.Errorf("unsupported node %T", n)
	}
}

func (p painter) rect(r *scene.Rect, toRoot scene.Transform) error {
	fill, err := render.ParseColor(r.Fill)
	if err != nil {
		return err
	}
	if !fill.Visible() {
		return nil
	}
	box := toRoot.ApplyBox(r.Bounds())
	p.canvas.Rect(round(box.MinX), round(box.MinY), round(box.Width()), round(box.Height()), fillStyle(fill))
	return nil
}

func (p painter) text(t *scene.Text, toRoot scene.Transform) error {
	if strings.TrimSpace(t.Content) == "" {
		return nil
	}
	fill, err := render.ParseColor(t.Fill)
	if err != nil {
		return err
	}
	box := toRoot.ApplyBox(t.Bounds())

	x, anchor := box.MinX+box.Width()/2, "middle"
	switch t.TextAlign {
	case "left":
		x, anchor = box.MinX, "start"
	case "right":
		x, anchor = box.MaxX, "end"
	}
	size := t.FontSize * toRoot.ScaleY

	style := []string{
		fillStyle(fill),
		"font-family:" + t.FontFamily,
		"font-size:" + strconv.FormatFloat(size, 'f', -1, 64) + "px",
		"text-anchor:" + anchor,
		"dominant-baseline:central",
	}
	p.canvas.Text(round(x), round(box.MinY+box.Height()/2), t.Content, strings.Join(style, ";"))
	return nil
}

func fillStyle(p render.Paint) string {
	style := "fill:" + p.Hex()
	if p.Opacity < 1 {
		style += ";fill-opacity:" + strconv.FormatFloat(p.Opacity, 'f', -1, 64)
	}
	return style
}

func round(v float64) int {
	return int(math.Round(v))
}

func dataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("photo %s is %s, not an image", path, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
