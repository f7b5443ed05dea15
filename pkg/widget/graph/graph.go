package graph

import (
	"sort"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/layout"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
)

// layoutPad keeps laid-out nodes away from the frame border.
const layoutPad = 1.0

// Key identifies a directed edge.
type Key struct {
	From, To string
}

// Graph is the graph widget: named nodes joined by edges, all children of
// one scene group.
type Graph struct {
	*scene.Group

	nodes map[string]*Node
	edges map[Key]*Edge

	style    style.Graph
	directed bool
	frame    scene.Frame
}

// Option configures a new Graph.
type Option func(*Graph)

// WithStyle sets the style record.
func WithStyle(st style.Graph) Option {
	return func(g *Graph) { g.style = st }
}

// WithDirected makes edges directed: they carry arrowheads unless their
// reverse already exists.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithFrame sets the frame node layout fits into.
func WithFrame(f scene.Frame) Option {
	return func(g *Graph) { g.frame = f }
}

// New creates an empty graph widget.
func New(opts ...Option) *Graph {
	g := &Graph{
		Group: scene.NewGroup(),
		nodes: make(map[string]*Node),
		edges: make(map[Key]*Edge),
		style: style.DefaultGraph(),
		frame: scene.DefaultFrame(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether the graph draws arrowheads.
func (g *Graph) Directed() bool { return g.directed }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodeNames returns the node names in sorted order.
func (g *Graph) NodeNames() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddNode adds a named node at pos. Adding a name twice is an error:
// silently replacing a node would orphan its edges.
func (g *Graph) AddNode(name string, pos geom.Vec) (*Node, error) {
	if _, ok := g.nodes[name]; ok {
		return nil, errors.New(errors.ErrCodeDuplicateNode, "node %q already exists", name)
	}
	n := newNode(name, g.style)
	n.moveTo(pos)
	g.nodes[name] = n
	g.Attach(n)
	return n, nil
}

// AddNodeAnim adds a node and returns its create transition.
func (g *Graph) AddNodeAnim(name string, pos geom.Vec) (*anim.Timeline, error) {
	n, err := g.AddNode(name, pos)
	if err != nil {
		return nil, err
	}
	return anim.Succession(anim.Create(n)), nil
}

// Node returns the named node.
func (g *Graph) Node(name string) (*Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNodeNotFound, "node %q does not exist", name)
	}
	return n, nil
}

// EdgeOption configures a new edge.
type EdgeOption func(*Edge)

// WithWeight attaches a weight label to the edge.
func WithWeight(weight string) EdgeOption {
	return func(e *Edge) {
		e.weight = scene.NewText(weight, style.Text{})
	}
}

// WithLabelDistance sets the gap between the edge and its weight label.
func WithLabelDistance(d float64) EdgeOption {
	return func(e *Edge) { e.labelDist = d }
}

// WithNodeAngle sets how far a curved edge's endpoints rotate off the
// center-to-center line. Ignored for straight edges.
func WithNodeAngle(a float64) EdgeOption {
	return func(e *Edge) { e.nodeAngle = a }
}

// AddEdge adds a straight edge from one named node to another. On a
// directed graph the edge carries an arrowhead unless its reverse already
// exists; when it does, both edges shift to their right-of-travel side so
// the pair stays readable. That arrowhead decision is made at insertion
// and never revisited.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (*Edge, error) {
	e, err := g.newEdge(from, to, opts)
	if err != nil {
		return nil, err
	}
	e.line = scene.NewLine(g.style.EdgeLine)
	e.line.SetZ(zEdge)
	e.Attach(e.line)
	g.insertEdge(e)
	return e, nil
}

// AddCurvedEdge adds an arc edge subtending angle radians. Curved edges
// never pair-shift: their bow already separates them from the opposite
// direction.
func (g *Graph) AddCurvedEdge(from, to string, angle float64, opts ...EdgeOption) (*Edge, error) {
	e, err := g.newEdge(from, to, opts)
	if err != nil {
		return nil, err
	}
	e.curved = true
	e.arcAngle = angle
	e.arc = scene.NewArc(geom.Left, geom.Right, angle, g.style.EdgeLine)
	e.arc.SetZ(zEdge)
	e.Attach(e.arc)
	g.insertEdge(e)
	return e, nil
}

func (g *Graph) newEdge(from, to string, opts []EdgeOption) (*Edge, error) {
	src, err := g.Node(from)
	if err != nil {
		return nil, err
	}
	dst, err := g.Node(to)
	if err != nil {
		return nil, err
	}
	if _, ok := g.edges[Key{from, to}]; ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "edge %s-%s already exists", from, to)
	}

	e := &Edge{
		Group:     scene.NewGroup(),
		from:      src,
		to:        dst,
		labelDist: DefaultLabelDistance,
		nodeAngle: DefaultNodeAngle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.weight != nil {
		e.weight.Style = g.style.EdgeWeight
		e.weight.SetZ(zNodeLabel)
		e.Attach(e.weight)
	}
	return e, nil
}

func (g *Graph) insertEdge(e *Edge) {
	key := Key{e.from.name, e.to.name}
	reverse := g.edges[Key{e.to.name, e.from.name}]

	e.arrow = g.directed && reverse == nil
	if reverse != nil && !e.curved && !reverse.curved {
		e.paired = true
		reverse.paired = true
		reverse.refresh()
	}

	e.refresh()
	g.edges[key] = e
	g.Attach(e)
}

// AddEdgeAnim adds a straight edge and returns its create transition.
func (g *Graph) AddEdgeAnim(from, to string, opts ...EdgeOption) (*anim.Timeline, error) {
	e, err := g.AddEdge(from, to, opts...)
	if err != nil {
		return nil, err
	}
	return anim.Succession(anim.Create(e)), nil
}

// Edge returns the edge from one named node to another.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	e, ok := g.edges[Key{from, to}]
	if !ok {
		return nil, errors.New(errors.ErrCodeEdgeNotFound, "edge %s-%s does not exist", from, to)
	}
	return e, nil
}

// ShowBackwardEdge materializes the reverse of an existing edge, shifted
// alongside it. The forward edge must exist and the backward one must
// not. A curved forward edge gets a curved reverse with the same angles.
func (g *Graph) ShowBackwardEdge(from, to string, opts ...EdgeOption) (*Edge, error) {
	fwd, err := g.Edge(from, to)
	if err != nil {
		return nil, err
	}
	if fwd.curved {
		return g.AddCurvedEdge(to, from, fwd.arcAngle, append([]EdgeOption{WithNodeAngle(fwd.nodeAngle)}, opts...)...)
	}
	return g.AddEdge(to, from, opts...)
}

// Layout places the nodes with the given algorithm, rescaled to the
// frame, and re-derives all edge geometry.
func (g *Graph) Layout(alg layout.Algorithm) error {
	fn, err := layout.Get(alg)
	if err != nil {
		return err
	}

	names := g.NodeNames()
	adj := make(map[string][]string, len(names))
	for key := range g.edges {
		adj[key.From] = append(adj[key.From], key.To)
		adj[key.To] = append(adj[key.To], key.From)
	}
	for _, ns := range adj {
		sort.Strings(ns)
	}

	pos := layout.Rescale(fn(names, adj), g.frame.XRadius()-layoutPad, g.frame.YRadius()-layoutPad)
	for name, p := range pos {
		g.nodes[name].moveTo(p)
	}
	for _, e := range g.edges {
		e.refresh()
	}
	return nil
}

// SetNodesHighlight highlights the named nodes, or every node when no
// names are given.
func (g *Graph) SetNodesHighlight(h style.Highlight, names ...string) error {
	if len(names) == 0 {
		names = g.NodeNames()
	}
	for _, name := range names {
		n, err := g.Node(name)
		if err != nil {
			return err
		}
		n.Highlight(h)
	}
	return nil
}

// SetEdgesHighlight highlights the keyed edges, or every edge when no
// keys are given.
func (g *Graph) SetEdgesHighlight(h style.Highlight, keys ...Key) error {
	if len(keys) == 0 {
		for _, e := range g.edges {
			e.Highlight(h)
		}
		return nil
	}
	for _, key := range keys {
		e, err := g.Edge(key.From, key.To)
		if err != nil {
			return err
		}
		e.Highlight(h)
	}
	return nil
}

// ClearHighlights removes every node and edge highlight.
func (g *Graph) ClearHighlights() {
	for _, n := range g.nodes {
		n.Unhighlight()
	}
	for _, e := range g.edges {
		e.Unhighlight()
	}
}

// Edges returns the edges keyed by direction. The map is shared; callers
// must not modify it.
func (g *Graph) Edges() map[Key]*Edge { return g.edges }

// AddLabel attaches a caption next to the graph's current bounds. Call it
// after Layout; the label does not follow later node moves.
func (g *Graph) AddLabel(text string, dir geom.Vec, buff float64) *scene.Text {
	label := scene.NewText(text, g.style.Label)
	label.SetZ(zNodeLabel)
	label.MoveTo(g.Bounds().NextTo(label.Width(), label.Height(), dir.Unit(), buff))
	g.Attach(label)
	return label
}
