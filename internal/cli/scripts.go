package cli

import (
	"sort"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
	"github.com/vizlab/dsanim/pkg/widget"
	"github.com/vizlab/dsanim/pkg/widget/graph"
)

// A script builds a demo scene and the ordered timelines that animate it.
// Scripts mutate their widgets up front; the timelines replay the visual
// transitions in sequence.
type script func() (*scene.Scene, []*anim.Timeline, error)

// scripts is the registry of built-in demos, keyed by the --script name.
var scripts = map[string]script{
	"array": arrayScript,
	"stack": stackScript,
	"graph": graphScript,
}

// scriptNames returns the registered script names in stable order.
func scriptNames() []string {
	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildScript looks up and runs the named script.
func buildScript(name string) (*scene.Scene, []*anim.Timeline, error) {
	fn, ok := scripts[name]
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "unknown script %q (available: %v)", name, scriptNames())
	}
	return fn()
}

// arrayScript appends, swaps, and pops on an indexed array.
func arrayScript() (*scene.Scene, []*anim.Timeline, error) {
	sc := scene.New()

	a := widget.NewArray([]string{"3", "1", "4", "1"})
	if err := a.AddIndexes(geom.Up, widget.DefaultIndexBuff); err != nil {
		return nil, nil, err
	}
	a.AddLabel("array", geom.Left, 0.6)
	sc.Root.Attach(a)

	var tls []*anim.Timeline

	tls = append(tls, a.AppendAnim("5"))

	swap, err := a.SwapAnim(0, 1)
	if err != nil {
		return nil, nil, err
	}
	tls = append(tls, swap)

	head, err := a.At(0)
	if err != nil {
		return nil, nil, err
	}
	tls = append(tls, anim.Succession(head.HighlightAnim(style.DefaultHighlight())))
	tls = append(tls, head.UnhighlightAnim())

	tls = append(tls, a.PopAtAnim(2))
	return sc, tls, nil
}

// stackScript pushes from the spawn point and pops back out.
func stackScript() (*scene.Scene, []*anim.Timeline, error) {
	sc := scene.New()

	s := widget.NewStack([]string{"1", "2"})
	s.AddLabel("stack", geom.Right, 0.6)
	sc.Root.Attach(s)

	top := widget.NewVariable("top", s.Peek().Value())
	top.MoveTo(geom.Vec{X: -4, Y: 2.5})
	sc.Root.Attach(top)

	var tls []*anim.Timeline
	for _, v := range []string{"3", "4"} {
		tls = append(tls, s.PushAnim(v))
		tls = append(tls, top.SetValueAnim(v))
	}
	tls = append(tls, s.PopAnim())
	tls = append(tls, top.SetValueAnim(s.Peek().Value()))
	return sc, tls, nil
}

// graphScript lays out a small weighted digraph and walks a path through
// it with highlights.
func graphScript() (*scene.Scene, []*anim.Timeline, error) {
	sc := scene.New()

	adj := graph.Adjacency{
		"A": {{Name: "B", Weight: "4"}, {Name: "C", Weight: "2"}},
		"B": {{Name: "D", Weight: "5"}},
		"C": {{Name: "B", Weight: "1"}, {Name: "D", Weight: "8"}},
		"D": nil,
	}
	g, err := graph.FromAdjacency(adj, graph.WithDirected())
	if err != nil {
		return nil, nil, err
	}
	g.AddLabel("graph", geom.Up, 0.4)
	sc.Root.Attach(g)

	// Walk the cheapest A-to-D path, lighting up one hop per timeline.
	var tls []*anim.Timeline
	h := style.DefaultHighlight()
	for _, hop := range [][2]string{{"A", "C"}, {"C", "B"}, {"B", "D"}} {
		from, err := g.Node(hop[0])
		if err != nil {
			return nil, nil, err
		}
		to, err := g.Node(hop[1])
		if err != nil {
			return nil, nil, err
		}
		if _, err := g.Edge(hop[0], hop[1]); err != nil {
			return nil, nil, err
		}
		if err := g.SetEdgesHighlight(h, graph.Key{From: hop[0], To: hop[1]}); err != nil {
			return nil, nil, err
		}
		tls = append(tls, anim.Succession(from.HighlightAnim(h), to.HighlightAnim(h)))
	}
	return sc, tls, nil
}
