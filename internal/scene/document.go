package scene

// Document is the serialisable form of a Node, tagged by Kind so consumers in
// other languages can decode the tree without type assertions.
type Document struct {
	Kind       string     `json:"kind" yaml:"kind"`
	Left       float64    `json:"left" yaml:"left"`
	Top        float64    `json:"top" yaml:"top"`
	OriginX    string     `json:"originX,omitempty" yaml:"originX,omitempty"`
	OriginY    string     `json:"originY,omitempty" yaml:"originY,omitempty"`
	Width      float64    `json:"width,omitempty" yaml:"width,omitempty"`
	Height     float64    `json:"height,omitempty" yaml:"height,omitempty"`
	Fill       string     `json:"fill,omitempty" yaml:"fill,omitempty"`
	Text       string     `json:"text,omitempty" yaml:"text,omitempty"`
	FontFamily string     `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize   float64    `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	TextAlign  string     `json:"textAlign,omitempty" yaml:"textAlign,omitempty"`
	ScaleX     float64    `json:"scaleX,omitempty" yaml:"scaleX,omitempty"`
	ScaleY     float64    `json:"scaleY,omitempty" yaml:"scaleY,omitempty"`
	Children   []Document `json:"objects,omitempty" yaml:"objects,omitempty"`
}

// ToDocument converts a tree into its serialisable form.
func ToDocument(n Node) Document {
	switch v := n.(type) {
	case *Rect:
		return Document{
			Kind:    KindRect.String(),
			Left:    v.Left,
			Top:     v.Top,
			OriginX: string(v.Origin.X),
			OriginY: string(v.Origin.Y),
			Width:   v.Width,
			Height:  v.Height,
			Fill:    v.Fill,
		}
	case *Text:
		return Document{
			Kind:       KindText.String(),
			Left:       v.Left,
			Top:        v.Top,
			OriginX:    string(v.Origin.X),
			OriginY:    string(v.Origin.Y),
			Width:      v.Width,
			Height:     v.Height(),
			Fill:       v.Fill,
			Text:       v.Content,
			FontFamily: v.FontFamily,
			FontSize:   v.FontSize,
			TextAlign:  v.TextAlign,
		}
	case *Group:
		sx, sy := v.scale()
		doc := Document{
			Kind:     KindGroup.String(),
			Left:     v.Left,
			Top:      v.Top,
			OriginX:  string(v.Origin.X),
			OriginY:  string(v.Origin.Y),
			ScaleX:   sx,
			ScaleY:   sy,
			Children: make([]Document, 0, len(v.Children)),
		}
		for _, child := range v.Children {
			if child == nil {
				continue
			}
			doc.Children = append(doc.Children, ToDocument(child))
		}
		return doc
	default:
		return Document{}
	}
}
