package scene

import (
	"github.com/google/uuid"

	"github.com/vizlab/dsanim/pkg/geom"
)

// Object is a drawable node in the scene graph. Shapes, text, and groups
// all implement it. Geometry methods mutate the object in place; the scene
// is single-threaded by contract.
type Object interface {
	// ID returns the stable identity of the object, assigned at creation.
	ID() string

	// Bounds returns the axis-aligned bounding rectangle.
	Bounds() geom.Rect

	// Center returns the bounds center.
	Center() geom.Vec

	// MoveTo translates the object so its center lands on p.
	MoveTo(p geom.Vec)

	// Shift translates the object by d.
	Shift(d geom.Vec)

	// ScaleBy scales the object's geometry by factor f about the point about.
	ScaleBy(f float64, about geom.Vec)

	// Opacity returns the object's opacity in [0, 1].
	Opacity() float64

	// SetOpacity sets the object's opacity. Groups cascade to children.
	SetOpacity(o float64)

	// Z returns the draw-order index; higher draws on top.
	Z() int

	// SetZ sets the draw-order index.
	SetZ(z int)
}

// base carries the identity, opacity, and z-order shared by all primitives.
type base struct {
	id      string
	opacity float64
	z       int
}

func newBase() base {
	return base{id: uuid.NewString(), opacity: 1}
}

func (b *base) ID() string           { return b.id }
func (b *base) Opacity() float64     { return b.opacity }
func (b *base) SetOpacity(o float64) { b.opacity = clamp01(o) }
func (b *base) Z() int               { return b.z }
func (b *base) SetZ(z int)           { b.z = z }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
