package scene

import (
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/style"
)

// Rect is an axis-aligned rectangle primitive.
type Rect struct {
	base
	center geom.Vec
	w, h   float64
	Style  style.Shape
}

// NewRect creates a rectangle centered at the origin with the style's
// width and height.
func NewRect(s style.Shape) *Rect {
	return &Rect{base: newBase(), w: s.Width, h: s.Height, Style: s}
}

func (r *Rect) Bounds() geom.Rect { return geom.Rect{Center: r.center, W: r.w, H: r.h} }
func (r *Rect) Center() geom.Vec  { return r.center }
func (r *Rect) MoveTo(p geom.Vec) { r.center = p }
func (r *Rect) Shift(d geom.Vec)  { r.center = r.center.Add(d) }

func (r *Rect) ScaleBy(f float64, about geom.Vec) {
	r.center = about.Add(r.center.Sub(about).Scale(f))
	r.w *= f
	r.h *= f
}

// W returns the current width.
func (r *Rect) W() float64 { return r.w }

// H returns the current height.
func (r *Rect) H() float64 { return r.h }

// Resize sets the rectangle extents in place, keeping the center fixed.
func (r *Rect) Resize(w, h float64) { r.w, r.h = w, h }

// Clone returns a copy of the rectangle with a fresh identity.
func (r *Rect) Clone() *Rect {
	c := *r
	c.base = newBase()
	c.z = r.z
	return &c
}

// Circle is a circle primitive.
type Circle struct {
	base
	center geom.Vec
	radius float64
	Style  style.Shape
}

// NewCircle creates a circle centered at the origin with the style's radius.
func NewCircle(s style.Shape) *Circle {
	return &Circle{base: newBase(), radius: s.Radius, Style: s}
}

func (c *Circle) Bounds() geom.Rect {
	return geom.Rect{Center: c.center, W: 2 * c.radius, H: 2 * c.radius}
}
func (c *Circle) Center() geom.Vec  { return c.center }
func (c *Circle) MoveTo(p geom.Vec) { c.center = p }
func (c *Circle) Shift(d geom.Vec)  { c.center = c.center.Add(d) }

func (c *Circle) ScaleBy(f float64, about geom.Vec) {
	c.center = about.Add(c.center.Sub(about).Scale(f))
	c.radius *= f
}

// Radius returns the current radius.
func (c *Circle) Radius() float64 { return c.radius }

// Clone returns a copy of the circle with a fresh identity.
func (c *Circle) Clone() *Circle {
	cl := *c
	cl.base = newBase()
	cl.z = c.z
	return &cl
}
