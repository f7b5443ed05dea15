package graph

import (
	"math"

	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/style"
)

// Edge geometry defaults.
const (
	// pairOffset is how far each edge of an opposite pair shifts to its
	// right-of-travel side so the two stay visually disjoint.
	pairOffset = 0.1
	// DefaultLabelDistance is the gap between an edge and its weight label.
	DefaultLabelDistance = 0.25
	// DefaultNodeAngle is how far a curved edge's endpoints rotate off the
	// center-to-center line on each node circle.
	DefaultNodeAngle = math.Pi / 12
)

// Edge joins two nodes with a straight line or a circular arc, optionally
// carrying a weight label and an arrowhead.
type Edge struct {
	*scene.Group

	from, to *Node

	line *scene.Line // straight edges
	arc  *scene.Arc  // curved edges

	weight    *scene.Text
	labelDist float64

	nodeAngle float64 // curved: endpoint rotation on the node circles
	arcAngle  float64 // curved: subtended arc angle

	curved bool
	arrow  bool
	paired bool // the opposite edge is also present

	savedStroke style.Color
	savedWidth  float64
	highlighted bool
}

// From returns the source node.
func (e *Edge) From() *Node { return e.from }

// To returns the destination node.
func (e *Edge) To() *Node { return e.to }

// Curved reports whether the edge is drawn as an arc.
func (e *Edge) Curved() bool { return e.curved }

// HasArrow reports whether the edge carries an arrowhead.
func (e *Edge) HasArrow() bool { return e.arrow }

// Weight returns the weight label text object, or nil for unweighted
// edges.
func (e *Edge) Weight() *scene.Text { return e.weight }

// Line returns the straight-edge primitive, or nil for curved edges.
func (e *Edge) Line() *scene.Line { return e.line }

// Arc returns the curved-edge primitive, or nil for straight edges.
func (e *Edge) Arc() *scene.Arc { return e.arc }

// Start returns the edge's current start point.
func (e *Edge) Start() geom.Vec {
	if e.curved {
		return e.arc.Start()
	}
	return e.line.Start()
}

// End returns the edge's current end point.
func (e *Edge) End() geom.Vec {
	if e.curved {
		return e.arc.End()
	}
	return e.line.End()
}

// refresh re-derives the edge geometry from the current node placement:
// endpoints on the circle boundaries, pair offset when the opposite edge
// exists, arrowhead re-attached after the endpoint move, and the weight
// label re-seated beside the edge.
func (e *Edge) refresh() {
	if e.curved {
		e.refreshArc()
	} else {
		e.refreshLine()
	}
}

func (e *Edge) refreshLine() {
	start, end := geom.LineEndpoints(e.from.Pos(), e.from.Radius(), e.to.Pos(), e.to.Radius())
	if e.paired {
		perp := end.Sub(start).Unit().Orthogonal().Scale(pairOffset)
		start = start.Add(perp)
		end = end.Add(perp)
	}

	// Endpoint moves invalidate the tip; drop it and re-attach after.
	e.line.RemoveTip()
	e.line.SetEndpoints(start, end)
	if e.arrow {
		e.line.AddTip()
	}

	if e.weight != nil {
		mid := start.Lerp(end, 0.5)
		perp := end.Sub(start).Unit().Orthogonal()
		e.weight.MoveTo(mid.Add(perp.Scale(e.labelDist)))
	}
}

func (e *Edge) refreshArc() {
	start, end := geom.ArcEndpoints(e.from.Pos(), e.from.Radius(), e.to.Pos(), e.to.Radius(), e.nodeAngle)

	e.arc.RemoveTip()
	e.arc.SetEndpoints(start, end)
	if e.arrow {
		e.arc.AddTip()
	}

	if e.weight != nil {
		peak := geom.ArcPeak(start, end, e.arcAngle)
		mid := start.Lerp(end, 0.5)
		away := peak.Sub(mid)
		if away.Len() == 0 {
			away = end.Sub(start).Unit().Orthogonal()
		}
		e.weight.MoveTo(peak.Add(away.Unit().Scale(e.labelDist)))
	}
}

// Highlight recolors the edge stroke in place. Unlike node highlights
// there is no overlay: a second stroke under an arrowhead reads as a
// double edge.
func (e *Edge) Highlight(h style.Highlight) *Edge {
	if !e.highlighted {
		if e.curved {
			e.savedStroke, e.savedWidth = e.arc.Style.Stroke, e.arc.Style.StrokeWidth
		} else {
			e.savedStroke, e.savedWidth = e.line.Style.Stroke, e.line.Style.StrokeWidth
		}
		e.highlighted = true
	}
	if e.curved {
		e.arc.Style.Stroke, e.arc.Style.StrokeWidth = h.Stroke, h.Width
	} else {
		e.line.Style.Stroke, e.line.Style.StrokeWidth = h.Stroke, h.Width
	}
	return e
}

// Unhighlight restores the stroke the edge had before Highlight.
func (e *Edge) Unhighlight() *Edge {
	if !e.highlighted {
		return e
	}
	if e.curved {
		e.arc.Style.Stroke, e.arc.Style.StrokeWidth = e.savedStroke, e.savedWidth
	} else {
		e.line.Style.Stroke, e.line.Style.StrokeWidth = e.savedStroke, e.savedWidth
	}
	e.highlighted = false
	return e
}

// Highlighted reports whether the edge stroke is currently replaced.
func (e *Edge) Highlighted() bool { return e.highlighted }
