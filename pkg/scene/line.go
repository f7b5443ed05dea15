package scene

import (
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/style"
)

// DefaultTipLength is the arrowhead size of tipped lines and arcs, in
// scene units.
const DefaultTipLength = 0.2

// Line is a straight segment primitive with an optional arrowhead at its
// end point.
type Line struct {
	base
	start, end geom.Vec
	tip        bool
	tipLength  float64
	Style      style.Shape
}

// NewLine creates a unit horizontal line; callers position it with
// SetEndpoints.
func NewLine(s style.Shape) *Line {
	return &Line{base: newBase(), start: geom.Left, end: geom.Right, tipLength: DefaultTipLength, Style: s}
}

func (l *Line) Bounds() geom.Rect {
	return geom.RectFrom(
		geom.Vec{X: min(l.start.X, l.end.X), Y: min(l.start.Y, l.end.Y)},
		geom.Vec{X: max(l.start.X, l.end.X), Y: max(l.start.Y, l.end.Y)},
	)
}

func (l *Line) Center() geom.Vec { return l.start.Lerp(l.end, 0.5) }

func (l *Line) MoveTo(p geom.Vec) { l.Shift(p.Sub(l.Center())) }

func (l *Line) Shift(d geom.Vec) {
	l.start = l.start.Add(d)
	l.end = l.end.Add(d)
}

func (l *Line) ScaleBy(f float64, about geom.Vec) {
	l.start = about.Add(l.start.Sub(about).Scale(f))
	l.end = about.Add(l.end.Sub(about).Scale(f))
	l.tipLength *= f
}

// Start returns the line's start point.
func (l *Line) Start() geom.Vec { return l.start }

// End returns the line's end point.
func (l *Line) End() geom.Vec { return l.end }

// SetEndpoints places the line between start and end. Tipped lines must
// drop their tip around endpoint moves; callers use RemoveTip/AddTip.
func (l *Line) SetEndpoints(start, end geom.Vec) {
	l.start, l.end = start, end
}

// Length returns the segment length.
func (l *Line) Length() float64 { return l.end.Sub(l.start).Len() }

// UnitVector returns the normalized direction from start to end.
func (l *Line) UnitVector() geom.Vec { return l.end.Sub(l.start).Unit() }

// AddTip attaches an arrowhead at the end point.
func (l *Line) AddTip() { l.tip = true }

// RemoveTip removes the arrowhead.
func (l *Line) RemoveTip() { l.tip = false }

// HasTip reports whether the line carries an arrowhead.
func (l *Line) HasTip() bool { return l.tip }

// TipLength returns the arrowhead size.
func (l *Line) TipLength() float64 { return l.tipLength }

// Clone returns a copy of the line with a fresh identity.
func (l *Line) Clone() *Line {
	c := *l
	c.base = newBase()
	c.z = l.z
	return &c
}

// Arc is a circular arc primitive between two points, with an optional
// arrowhead at its end point. Angle is the subtended arc angle; positive
// angles bow to the right of the chord, seen along start-to-end travel.
type Arc struct {
	base
	start, end geom.Vec
	angle      float64
	tip        bool
	tipLength  float64
	Style      style.Shape
}

// NewArc creates an arc between start and end subtending angle radians.
func NewArc(start, end geom.Vec, angle float64, s style.Shape) *Arc {
	return &Arc{base: newBase(), start: start, end: end, angle: angle, tipLength: DefaultTipLength, Style: s}
}

func (a *Arc) Bounds() geom.Rect {
	peak := geom.ArcPeak(a.start, a.end, a.angle)
	r := geom.RectFrom(
		geom.Vec{X: min(a.start.X, a.end.X), Y: min(a.start.Y, a.end.Y)},
		geom.Vec{X: max(a.start.X, a.end.X), Y: max(a.start.Y, a.end.Y)},
	)
	return r.Union(geom.Rect{Center: peak, W: 0.001, H: 0.001})
}

func (a *Arc) Center() geom.Vec { return a.start.Lerp(a.end, 0.5) }

func (a *Arc) MoveTo(p geom.Vec) { a.Shift(p.Sub(a.Center())) }

func (a *Arc) Shift(d geom.Vec) {
	a.start = a.start.Add(d)
	a.end = a.end.Add(d)
}

func (a *Arc) ScaleBy(f float64, about geom.Vec) {
	a.start = about.Add(a.start.Sub(about).Scale(f))
	a.end = about.Add(a.end.Sub(about).Scale(f))
	a.tipLength *= f
}

// Start returns the arc's start point.
func (a *Arc) Start() geom.Vec { return a.start }

// End returns the arc's end point.
func (a *Arc) End() geom.Vec { return a.end }

// Angle returns the subtended arc angle.
func (a *Arc) Angle() float64 { return a.angle }

// SetEndpoints places the arc between start and end, keeping its angle.
func (a *Arc) SetEndpoints(start, end geom.Vec) {
	a.start, a.end = start, end
}

// AddTip attaches an arrowhead at the end point.
func (a *Arc) AddTip() { a.tip = true }

// RemoveTip removes the arrowhead.
func (a *Arc) RemoveTip() { a.tip = false }

// HasTip reports whether the arc carries an arrowhead.
func (a *Arc) HasTip() bool { return a.tip }

// TipLength returns the arrowhead size.
func (a *Arc) TipLength() float64 { return a.tipLength }

// Clone returns a copy of the arc with a fresh identity.
func (a *Arc) Clone() *Arc {
	c := *a
	c.base = newBase()
	c.z = a.z
	return &c
}
