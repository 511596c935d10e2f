package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Paint is a parsed fill: an opaque color plus an opacity in [0, 1].
type Paint struct {
	Color   colorful.Color
	Opacity float64
}

// Transparent paints nothing.
var Transparent = Paint{}

// ParseColor understands the fill strings a scene carries: "#rgb",
// "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)", "hsl(h, s%, l%)",
// "hsla(h, s%, l%, a)" and SVG color names. An empty string is Transparent.
func ParseColor(s string) (Paint, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "none" || s == "transparent":
		return Transparent, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(expandHex(s))
		if err != nil {
			return Paint{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Paint{Color: c, Opacity: 1}, nil
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunctional(s)
	case strings.HasPrefix(s, "hsla(") || strings.HasPrefix(s, "hsl("):
		return parseHSL(s)
	}

	if named, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(named)
		return Paint{Color: c, Opacity: 1}, nil
	}
	return Paint{}, fmt.Errorf("parse color %q: unknown format", s)
}

// MustParseColor is ParseColor for literals; it panics on error.
func MustParseColor(s string) Paint {
	p, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return p
}

func expandHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// components splits "name(a, b, c)" into its arguments. Four are expected
// when the name ends in "a", three otherwise.
func components(s string) ([]string, error) {
	open, closing := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if closing < open {
		return nil, fmt.Errorf("parse color %q: missing ')'", s)
	}
	parts := strings.Split(s[open+1:closing], ",")
	want := 3
	if s[open-1] == 'a' {
		want = 4
	}
	if len(parts) != want {
		return nil, fmt.Errorf("parse color %q: want %d components, got %d", s, want, len(parts))
	}
	return parts, nil
}

func parseAlpha(s string, parts []string) (float64, error) {
	if len(parts) < 4 {
		return 1, nil
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || a < 0 || a > 1 {
		return 0, fmt.Errorf("parse color %q: bad alpha %q", s, parts[3])
	}
	return a, nil
}

func parseFunctional(s string) (Paint, error) {
	parts, err := components(s)
	if err != nil {
		return Paint{}, err
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return Paint{}, fmt.Errorf("parse color %q: bad channel %q", s, parts[i])
		}
		channels[i] = v / 255
	}

	opacity, err := parseAlpha(s, parts)
	if err != nil {
		return Paint{}, err
	}

	return Paint{Color: colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, Opacity: opacity}, nil
}

// parseHSL reads hue in degrees and saturation and lightness as percentages.
func parseHSL(s string) (Paint, error) {
	parts, err := components(s)
	if err != nil {
		return Paint{}, err
	}

	hue, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[0]), "deg"), 64)
	if err != nil {
		return Paint{}, fmt.Errorf("parse color %q: bad hue %q", s, parts[0])
	}
	var sl [2]float64
	for i := range sl {
		raw := strings.TrimSpace(parts[i+1])
		if !strings.HasSuffix(raw, "%") {
			return Paint{}, fmt.Errorf("parse color %q: %q is not a percentage", s, parts[i+1])
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil || v < 0 || v > 100 {
			return Paint{}, fmt.Errorf("parse color %q: bad percentage %q", s, parts[i+1])
		}
		sl[i] = v / 100
	}

	opacity, err := parseAlpha(s, parts)
	if err != nil {
		return Paint{}, err
	}

	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return Paint{Color: colorful.Hsl(hue, sl[0], sl[1]), Opacity: opacity}, nil
}

// Hex returns the opaque part as "#rrggbb".
func (p Paint) Hex() string {
	return p.Color.Clamped().Hex()
}

// Visible reports whether the paint has any opacity.
func (p Paint) Visible() bool {
	return p.Opacity > 0
}

// Over composites p onto an opaque backdrop.
func (p Paint) Over(backdrop colorful.Color) colorful.Color {
	return backdrop.BlendRgb(p.Color, p.Opacity).Clamped()
}

// NRGBA converts the paint to a non-premultiplied image color.
func (p Paint) NRGBA() color.NRGBA {
	r, g, b := p.Color.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(p.Opacity * 255))}
}
