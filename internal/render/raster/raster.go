// Package raster paints a scene onto a bitmap, optionally over a photo, and
// encodes it as PNG.
package raster

import (
	"fmt"
	"image"
	"io"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/LittlePapers/calendarizer/internal/render"
	"github.com/LittlePapers/calendarizer/internal/scene"
	calerrors "github.com/LittlePapers/calendarizer/pkg/errors"
)

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

func mono() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = truetype.Parse(gomono.TTF)
	})
	return monoFont, monoErr
}

// Render encodes root as a PNG image.
func Render(w io.Writer, root scene.Node, opts render.Options) error {
	dc, err := paint(root, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return calerrors.NewRenderError(string(render.FormatPNG), err)
	}
	return nil
}

// Image paints root onto a new bitmap. Without a photo the backdrop is white.
func Image(root scene.Node, opts render.Options) (image.Image, error) {
	dc, err := paint(root, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func paint(root scene.Node, opts render.Options) (*gg.Context, error) {
	width, height := render.CanvasSize(root, opts)
	dc := gg.NewContext(width, height)

	if err := backdrop(dc, opts.Photo); err != nil {
		return nil, calerrors.NewRenderError(string(render.FormatPNG), err)
	}

	p := &painter{dc: dc, faces: map[float64]font.Face{}}
	for _, leaf := range scene.Leaves(root) {
		if err := p.leaf(leaf); err != nil {
			return nil, calerrors.NewRenderError(string(render.FormatPNG), err)
		}
	}
	return dc, nil
}

func backdrop(dc *gg.Context, photo string) error {
	if photo == "" {
		dc.SetRGB(1, 1, 1)
		dc.Clear()
		return nil
	}

	img, err := gg.LoadImage(photo)
	if err != nil {
		return fmt.Errorf("load photo: %w", err)
	}
	bounds := img.Bounds()
	dc.Push()
	dc.Scale(float64(dc.Width())/float64(bounds.Dx()), float64(dc.Height())/float64(bounds.Dy()))
	dc.DrawImage(img, -bounds.Min.X, -bounds.Min.Y)
	dc.Pop()
	return nil
}

type painter struct {
	dc    *gg.Context
	faces map[float64]font.Face
}

func (p *painter) leaf(leaf scene.Placed) error {
	switch v := leaf.Node.(type) {
	case *scene.Rect:
		fill, err := render.ParseColor(v.Fill)
		if err != nil {
			return err
		}
		if !fill.Visible() {
			return nil
		}
		p.dc.DrawRectangle(leaf.Box.MinX, leaf.Box.MinY, leaf.Box.Width(), leaf.Box.Height())
		p.dc.SetColor(fill.NRGBA())
		p.dc.Fill()
	case *scene.Text:
		if strings.TrimSpace(v.Content) == "" {
			return nil
		}
		fill, err := render.ParseColor(v.Fill)
		if err != nil {
			return err
		}
		face, err := p.face(v.FontSize * leaf.Transform.ScaleY)
		if err != nil {
			return err
		}
		p.dc.SetFontFace(face)
		p.dc.SetColor(fill.NRGBA())

		x, ax := leaf.Box.MinX+leaf.Box.Width()/2, 0.5
		switch v.TextAlign {
		case "left":
			x, ax = leaf.Box.MinX, 0
		case "right":
			x, ax = leaf.Box.MaxX, 1
		}
		p.dc.DrawStringAnchored(v.Content, x, leaf.Box.MinY+leaf.Box.Height()/2, ax, 0.35)
	}
	return nil
}

// face returns the monospace face for size, loading each size once.
func (p *painter) face(size float64) (font.Face, error) {
	if f, ok := p.faces[size]; ok {
		return f, nil
	}
	ttf, err := mono()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: size})
	p.faces[size] = f
	return f, nil
}
