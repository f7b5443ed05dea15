package scene

import (
	"slices"

	"github.com/vizlab/dsanim/pkg/geom"
)

// Updater is a hook run after every geometric change of a group. Widgets
// use updaters to keep derived coordinates (e.g. a stack's spawn point)
// consistent with the current transform.
type Updater func(g *Group)

// Group is an ordered collection of scene objects with explicit
// membership. Transforms cascade to all children and then run the group's
// updaters.
type Group struct {
	base
	children []Object
	updaters []Updater
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{base: newBase()}
}

// Attach appends child to the group's draw list. Attaching an object that
// is already a member is a no-op, so re-attach after Detach is always safe.
func (g *Group) Attach(child Object) {
	if g.indexOf(child) >= 0 {
		return
	}
	g.children = append(g.children, child)
}

// Detach removes child from the group's draw list. The child keeps its
// geometry; detaching a non-member is a no-op.
func (g *Group) Detach(child Object) {
	if i := g.indexOf(child); i >= 0 {
		g.children = slices.Delete(g.children, i, i+1)
	}
}

// Contains reports whether child is a direct member of the group.
func (g *Group) Contains(child Object) bool { return g.indexOf(child) >= 0 }

// Children returns the group's direct members in draw order.
// The returned slice is shared; callers must not modify it.
func (g *Group) Children() []Object { return g.children }

// Len returns the number of direct members.
func (g *Group) Len() int { return len(g.children) }

func (g *Group) indexOf(child Object) int {
	return slices.IndexFunc(g.children, func(o Object) bool { return o.ID() == child.ID() })
}

// AddUpdater registers a hook that runs after every transform of the group.
func (g *Group) AddUpdater(u Updater) {
	g.updaters = append(g.updaters, u)
	u(g)
}

func (g *Group) runUpdaters() {
	for _, u := range g.updaters {
		u(g)
	}
}

func (g *Group) Bounds() geom.Rect {
	var r geom.Rect
	for _, c := range g.children {
		r = r.Union(c.Bounds())
	}
	return r
}

func (g *Group) Center() geom.Vec { return g.Bounds().Center }

func (g *Group) MoveTo(p geom.Vec) {
	g.Shift(p.Sub(g.Center()))
}

func (g *Group) Shift(d geom.Vec) {
	for _, c := range g.children {
		c.Shift(d)
	}
	g.runUpdaters()
}

func (g *Group) ScaleBy(f float64, about geom.Vec) {
	for _, c := range g.children {
		c.ScaleBy(f, about)
	}
	g.runUpdaters()
}

// Scale scales the group about its own center.
func (g *Group) Scale(f float64) {
	g.ScaleBy(f, g.Center())
}

// SetOpacity cascades the opacity to every child.
func (g *Group) SetOpacity(o float64) {
	g.base.SetOpacity(o)
	for _, c := range g.children {
		c.SetOpacity(o)
	}
}
