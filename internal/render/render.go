// Package render holds what every scene backend shares: fill parsing, the
// drawing frame of a tree and the document exports.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LittlePapers/calendarizer/internal/scene"
	calerrors "github.com/LittlePapers/calendarizer/pkg/errors"
)

// Format names an output encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatJSON, FormatYAML}
}

// ParseFormat accepts a format name or a file extension such as ".yml".
func ParseFormat(name string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "."))
	if f == "yml" {
		f = FormatYAML
	}
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", calerrors.NewValidationError("format", fmt.Sprintf("unsupported output format %q", name), nil)
}

// Options sizes the canvas of the image backends. A zero Width or Height is
// derived from the scene frame.
type Options struct {
	Width  int
	Height int
	// Photo is an image file drawn under the scene, stretched to the canvas.
	Photo string
}

// Frame returns the union of the absolute boxes of all leaves.
func Frame(root scene.Node) scene.Box {
	var box scene.Box
	for i, leaf := range scene.Leaves(root) {
		if i == 0 {
			box = leaf.Box
			continue
		}
		box = box.Union(leaf.Box)
	}
	return box
}

// CanvasSize resolves the canvas dimensions, keeping the frame's top-left
// margin on the right and bottom as well.
func CanvasSize(root scene.Node, opts Options) (int, int) {
	w, h := opts.Width, opts.Height
	if w > 0 && h > 0 {
		return w, h
	}
	frame := Frame(root)
	if w <= 0 {
		w = int(math.Ceil(frame.MaxX + math.Max(frame.MinX, 0)))
	}
	if h <= 0 {
		h = int(math.Ceil(frame.MaxY + math.Max(frame.MinY, 0)))
	}
	return max(w, 1), max(h, 1)
}

// WriteJSON writes the document form of root as indented JSON.
func WriteJSON(w io.Writer, root scene.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(scene.ToDocument(root)); err != nil {
		return calerrors.NewRenderError(string(FormatJSON), err)
	}
	return nil
}

// WriteYAML writes the document form of root as YAML.
func WriteYAML(w io.Writer, root scene.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(scene.ToDocument(root)); err != nil {
		return calerrors.NewRenderError(string(FormatYAML), err)
	}
	if err := enc.Close(); err != nil {
		return calerrors.NewRenderError(string(FormatYAML), err)
	}
	return nil
}
