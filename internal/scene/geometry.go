package scene

// HAlign is the horizontal component of an Origin.
type HAlign string

// VAlign is the vertical component of an Origin.
type VAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"

	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "center"
	AlignBottom VAlign = "bottom"
)

// Origin selects the anchor point of a node's bounding box.
type Origin struct {
	X HAlign
	Y VAlign
}

var (
	OriginTopLeft   = Origin{X: AlignLeft, Y: AlignTop}
	OriginTopCenter = Origin{X: AlignCenter, Y: AlignTop}
	OriginCenter    = Origin{X: AlignCenter, Y: AlignMiddle}
)

// fractions converts the origin into [0,1] offsets; empty fields read as left/top.
func (o Origin) fractions() (float64, float64) {
	fx, fy := 0.0, 0.0
	switch o.X {
	case AlignCenter:
		fx = 0.5
	case AlignRight:
		fx = 1
	}
	switch o.Y {
	case AlignMiddle:
		fy = 0.5
	case AlignBottom:
		fy = 1
	}
	return fx, fy
}

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Anchor returns the point of the box selected by origin.
func (b Box) Anchor(origin Origin) Point {
	fx, fy := origin.fractions()
	return Point{
		X: b.MinX + fx*b.Width(),
		Y: b.MinY + fy*b.Height(),
	}
}

func placeBox(at Point, width, height float64, origin Origin) Box {
	fx, fy := origin.fractions()
	minX := at.X - fx*width
	minY := at.Y - fy*height
	return Box{MinX: minX, MinY: minY, MaxX: minX + width, MaxY: minY + height}
}

// Transform is a scale followed by a translation. Scene nodes never rotate.
type Transform struct {
	ScaleX     float64
	ScaleY     float64
	TranslateX float64
	TranslateY float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// Apply maps p through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: p.X*t.ScaleX + t.TranslateX,
		Y: p.Y*t.ScaleY + t.TranslateY,
	}
}

// ApplyBox maps both corners of b. Scales are assumed positive.
func (t Transform) ApplyBox(b Box) Box {
	lo := t.Apply(Point{X: b.MinX, Y: b.MinY})
	hi := t.Apply(Point{X: b.MaxX, Y: b.MaxY})
	return Box{MinX: lo.X, MinY: lo.Y, MaxX: hi.X, MaxY: hi.Y}
}

// Then returns the transform that applies t first and outer second.
func (t Transform) Then(outer Transform) Transform {
	return Transform{
		ScaleX:     t.ScaleX * outer.ScaleX,
		ScaleY:     t.ScaleY * outer.ScaleY,
		TranslateX: t.TranslateX*outer.ScaleX + outer.TranslateX,
		TranslateY: t.TranslateY*outer.ScaleY + outer.TranslateY,
	}
}
