package graph

import (
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
)

// Z bands inside the graph widget: edges under nodes, labels on top.
const (
	zEdge      = 0
	zNode      = 2
	zNodeLabel = 3
)

// Node is a named graph vertex: a circle with the name centered in it.
type Node struct {
	*scene.Group

	name      string
	circle    *scene.Circle
	label     *scene.Text
	highlight *scene.Circle
}

func newNode(name string, st style.Graph) *Node {
	n := &Node{
		Group:  scene.NewGroup(),
		name:   name,
		circle: scene.NewCircle(st.NodeCircle),
		label:  scene.NewText(name, st.NodeLabel),
	}
	n.circle.SetZ(zNode)
	n.label.SetZ(zNodeLabel)
	n.label.MoveTo(n.circle.Center())
	n.Attach(n.circle)
	n.Attach(n.label)
	return n
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Circle returns the node's circle primitive.
func (n *Node) Circle() *scene.Circle { return n.circle }

// Label returns the node's name text.
func (n *Node) Label() *scene.Text { return n.label }

// Pos returns the node's circle center.
func (n *Node) Pos() geom.Vec { return n.circle.Center() }

// Radius returns the node's circle radius.
func (n *Node) Radius() float64 { return n.circle.Radius() }

// Highlight attaches a highlight ring: an outline clone of the circle
// with the given stroke, drawn above it.
func (n *Node) Highlight(h style.Highlight) *Node {
	if n.highlight == nil {
		n.highlight = n.circle.Clone()
	}
	n.highlight.Style = n.highlight.Style.WithFill("", 0).WithStroke(h.Stroke)
	n.highlight.Style.StrokeWidth = h.Width
	n.syncHighlight()
	n.highlight.SetZ(n.circle.Z() + 1)
	n.Attach(n.highlight)
	return n
}

// HighlightAnim highlights and returns the ring's create transition.
func (n *Node) HighlightAnim(h style.Highlight) anim.Animation {
	n.Highlight(h)
	return anim.Create(n.highlight)
}

// Unhighlight detaches the highlight ring.
func (n *Node) Unhighlight() *Node {
	if n.highlight != nil {
		n.Detach(n.highlight)
	}
	return n
}

// Highlighted reports whether the ring is currently attached.
func (n *Node) Highlighted() bool {
	return n.highlight != nil && n.Contains(n.highlight)
}

func (n *Node) syncHighlight() {
	if n.highlight == nil {
		return
	}
	n.highlight.MoveTo(n.circle.Center())
	// Clone keeps the radius in lockstep only at clone time; re-match it.
	if n.highlight.Radius() != n.circle.Radius() {
		f := n.circle.Radius() / n.highlight.Radius()
		n.highlight.ScaleBy(f, n.highlight.Center())
	}
}

// moveTo places the node's circle center at p, carrying the label and
// highlight along.
func (n *Node) moveTo(p geom.Vec) {
	n.Shift(p.Sub(n.circle.Center()))
}
