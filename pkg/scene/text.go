package scene

import (
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/style"
)

// Text extent heuristics: scene units per font point for glyph height, and
// the average glyph width as a fraction of that height. These only drive
// layout spacing; sinks measure real glyphs when they rasterize.
const (
	unitsPerFontPoint = 1.0 / 96.0
	fontHeightRatio   = 0.6
	fontCharWidth     = 0.55
)

// Text is a single-line text primitive. The content can be replaced in
// place; the replacement keeps the current position and scale so running
// animations stay continuous.
type Text struct {
	base
	center  geom.Vec
	content string
	scale   float64
	Style   style.Text
}

// NewText creates a text object centered at the origin.
func NewText(content string, s style.Text) *Text {
	return &Text{base: newBase(), content: content, scale: 1, Style: s}
}

func (t *Text) Bounds() geom.Rect {
	h := t.Height()
	w := t.Width()
	return geom.Rect{Center: t.center, W: w, H: h}
}

func (t *Text) Center() geom.Vec  { return t.center }
func (t *Text) MoveTo(p geom.Vec) { t.center = p }
func (t *Text) Shift(d geom.Vec)  { t.center = t.center.Add(d) }

func (t *Text) ScaleBy(f float64, about geom.Vec) {
	t.center = about.Add(t.center.Sub(about).Scale(f))
	t.scale *= f
}

// Content returns the current text.
func (t *Text) Content() string { return t.content }

// SetContent replaces the text in place, keeping position, scale, and style.
func (t *Text) SetContent(content string) { t.content = content }

// FontSize returns the effective font size after scaling.
func (t *Text) FontSize() float64 { return t.Style.Size * t.scale }

// Height returns the estimated glyph height in scene units.
func (t *Text) Height() float64 {
	return t.FontSize() * fontHeightRatio * unitsPerFontPoint
}

// Width returns the estimated text width in scene units.
func (t *Text) Width() float64 {
	return float64(len([]rune(t.content))) * t.FontSize() * fontCharWidth * unitsPerFontPoint
}

// Clone returns a copy of the text with a fresh identity.
func (t *Text) Clone() *Text {
	c := *t
	c.base = newBase()
	c.z = t.z
	return &c
}
