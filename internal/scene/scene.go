// Package scene models a positioned drawing as a tree of rectangles, text
// labels and groups.
//
// Leaves (Rect, Text) are the only nodes a renderer draws. A Group draws
// nothing: it places its children in a local coordinate space, scales that
// space and fixes paint order (first child is painted first).
//
// Every node has a Left/Top position and an Origin. The Origin names the point
// of the node's bounding box that sits at (Left, Top) in the parent's space,
// so a Rect with OriginTopCenter at (0, 0) spans [-w/2, w/2] horizontally.
// Group bounds are the union of their children's bounds, scaled.
//
// Renderers switch on Node.Kind and use Walk to obtain absolute transforms.
package scene

import "fmt"

// Kind identifies the concrete type of a Node.
type Kind int

const (
	KindRect Kind = iota + 1
	KindText
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindText:
		return "text"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// LineHeight is the ratio between a text label's box height and its font size.
const LineHeight = 1.16

// Node is implemented by Rect, Text and Group only.
type Node interface {
	Kind() Kind
	// Bounds returns the node's box in its parent's coordinate space.
	Bounds() Box
	sealed()
}

// Rect is a filled rectangle.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
	Fill   string
	Origin Origin
}

func (*Rect) Kind() Kind { return KindRect }
func (*Rect) sealed()    {}

// Bounds implements Node.
func (r *Rect) Bounds() Box {
	return placeBox(Point{X: r.Left, Y: r.Top}, r.Width, r.Height, r.Origin)
}

// Text is a single-line label. Width is the nominal layout width, which may
// differ from the glyph width a backend measures.
type Text struct {
	Content    string
	Left       float64
	Top        float64
	Width      float64
	FontFamily string
	FontSize   float64
	Fill       string
	TextAlign  string
	Origin     Origin
}

func (*Text) Kind() Kind { return KindText }
func (*Text) sealed()    {}

// Height is the label's box height derived from its font size.
func (t *Text) Height() float64 {
	return t.FontSize * LineHeight
}

// Bounds implements Node.
func (t *Text) Bounds() Box {
	return placeBox(Point{X: t.Left, Y: t.Top}, t.Width, t.Height(), t.Origin)
}

// Group positions and orders children. A zero ScaleX or ScaleY means 1.
type Group struct {
	Left     float64
	Top      float64
	ScaleX   float64
	ScaleY   float64
	Origin   Origin
	Children []Node
}

func (*Group) Kind() Kind { return KindGroup }
func (*Group) sealed()    {}

// NewGroup returns an unscaled group holding children in paint order.
func NewGroup(origin Origin, children ...Node) *Group {
	return &Group{
		ScaleX:   1,
		ScaleY:   1,
		Origin:   origin,
		Children: children,
	}
}

// Add appends children after the existing ones.
func (g *Group) Add(children ...Node) {
	g.Children = append(g.Children, children...)
}

// Content returns the union of the children's bounds in the group's local space.
func (g *Group) Content() Box {
	var box Box
	for i, child := range g.Children {
		if i == 0 {
			box = child.Bounds()
			continue
		}
		box = box.Union(child.Bounds())
	}
	return box
}

// Local returns the transform from the group's local space to its parent's.
func (g *Group) Local() Transform {
	sx, sy := g.scale()
	anchor := g.Content().Anchor(g.Origin)
	return Transform{
		ScaleX:     sx,
		ScaleY:     sy,
		TranslateX: g.Left - anchor.X*sx,
		TranslateY: g.Top - anchor.Y*sy,
	}
}

// Bounds implements Node.
func (g *Group) Bounds() Box {
	return g.Local().ApplyBox(g.Content())
}

func (g *Group) scale() (float64, float64) {
	sx, sy := g.ScaleX, g.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}
