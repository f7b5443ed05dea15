// Package style defines the visual configuration records used by widgets.
//
// Styles are immutable value types: a widget captures its style at
// construction and every derived variant is produced by a With* method
// returning a modified copy. There is no shared mutable style state.
//
// Named themes (Default, Blue, Purple, Green) mirror the stock palettes of
// the renderer; custom themes can be loaded from TOML with LoadTheme.
package style

// Color is a hex color string ("#rrggbb"). An empty Color means "unset" and
// renders as fully transparent fill or no stroke, depending on context.
type Color string

// Stock palette.
const (
	White  Color = "#ffffff"
	Gray   Color = "#888888"
	Red    Color = "#fc6255"
	BlueB  Color = "#9cdceb"
	BlueD  Color = "#236b8e"
	BlueA  Color = "#c7e9f1"
	Purple Color = "#eb97fc"
	Violet Color = "#8c46d6"
	GreenL Color = "#b2ff8c"
	GreenD Color = "#2ea556"
)

// Shape configures a shape primitive: stroke, fill, and base geometry.
type Shape struct {
	Stroke      Color
	StrokeWidth float64
	Fill        Color
	FillOpacity float64
	Width       float64 // rectangles
	Height      float64 // rectangles
	Radius      float64 // circles
}

// Text configures a text primitive.
type Text struct {
	Color Color
	Font  string
	Size  float64
	Bold  bool
}

// WithStroke returns a copy of s with the stroke color replaced.
func (s Shape) WithStroke(c Color) Shape { s.Stroke = c; return s }

// WithFill returns a copy of s with fill color and opacity replaced.
func (s Shape) WithFill(c Color, opacity float64) Shape {
	s.Fill = c
	s.FillOpacity = opacity
	return s
}

// WithSize returns a copy of s with width and height replaced.
func (s Shape) WithSize(w, h float64) Shape { s.Width = w; s.Height = h; return s }

// WithColor returns a copy of t with the color replaced.
func (t Text) WithColor(c Color) Text { t.Color = c; return t }

// WithSize returns a copy of t with the font size replaced.
func (t Text) WithSize(size float64) Text { t.Size = size; return t }

// Collection bundles the styles of an array or stack widget.
type Collection struct {
	Cell      Shape // element square
	Value     Text  // element value text
	Index     Text  // index captions (arrays)
	Container Shape // stack container outline
	Label     Text  // widget caption
}

// Graph bundles the styles of a graph widget.
type Graph struct {
	NodeCircle Shape
	NodeLabel  Text
	EdgeLine   Shape
	EdgeWeight Text
	Label      Text
}

// Highlight configures a highlight overlay.
type Highlight struct {
	Stroke Color
	Width  float64
}

// DefaultHighlight is the stock highlight: a thick red outline.
func DefaultHighlight() Highlight { return Highlight{Stroke: Red, Width: 8} }

const defaultFont = "Cascadia Code"

// DefaultCollection returns the stock monochrome collection theme.
func DefaultCollection() Collection {
	return Collection{
		Cell:      Shape{Stroke: White, StrokeWidth: 6, Width: 1, Height: 1},
		Value:     Text{Color: White, Font: defaultFont, Size: 48, Bold: true},
		Index:     Text{Color: White, Font: defaultFont, Size: 32},
		Container: Shape{Stroke: Red, StrokeWidth: 6},
		Label:     Text{Color: BlueA, Font: defaultFont, Size: 38},
	}
}

// BlueCollection returns the blue collection theme.
func BlueCollection() Collection {
	c := DefaultCollection()
	c.Cell = c.Cell.WithStroke(BlueB).WithFill(BlueD, 1)
	c.Index = c.Index.WithColor(BlueD)
	return c
}

// PurpleCollection returns the purple collection theme.
func PurpleCollection() Collection {
	c := DefaultCollection()
	c.Cell = c.Cell.WithStroke(Purple).WithFill(Violet, 1)
	c.Index = c.Index.WithColor(Color("#fabcff"))
	return c
}

// GreenCollection returns the green collection theme.
func GreenCollection() Collection {
	c := DefaultCollection()
	c.Cell = c.Cell.WithStroke(GreenL).WithFill(GreenD, 1)
	return c
}

// DefaultGraph returns the stock monochrome graph theme.
func DefaultGraph() Graph {
	return Graph{
		NodeCircle: Shape{Stroke: White, StrokeWidth: 6, Radius: 0.33},
		NodeLabel:  Text{Color: White, Font: defaultFont, Size: 32, Bold: true},
		EdgeLine:   Shape{Stroke: Gray, StrokeWidth: 7},
		EdgeWeight: Text{Color: White, Font: defaultFont, Size: 21},
		Label:      Text{Color: BlueA, Font: defaultFont, Size: 38},
	}
}

// BlueGraph returns the blue graph theme.
func BlueGraph() Graph {
	g := DefaultGraph()
	g.NodeCircle = g.NodeCircle.WithStroke(BlueB).WithFill(BlueD, 0.75)
	return g
}

// PurpleGraph returns the purple graph theme.
func PurpleGraph() Graph {
	g := DefaultGraph()
	g.NodeCircle = g.NodeCircle.WithStroke(Purple).WithFill(Violet, 0.75)
	return g
}

// GreenGraph returns the green graph theme.
func GreenGraph() Graph {
	g := DefaultGraph()
	g.NodeCircle = g.NodeCircle.WithStroke(GreenL).WithFill(GreenD, 0.75)
	return g
}
