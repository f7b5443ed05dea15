package render

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-graphviz"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/widget/graph"
)

// ToDOT converts a graph widget to Graphviz DOT format. This is a
// structural export: positions and styling are left to Graphviz, so it
// suits quick inspection rather than faithful scene reproduction. The
// result renders with [RenderDOT].
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	if g.Directed() {
		buf.WriteString("digraph G {\n")
	} else {
		buf.WriteString("graph G {\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=20];\n")
	buf.WriteString("\n")

	for _, name := range g.NodeNames() {
		fmt.Fprintf(&buf, "  %q;\n", name)
	}

	arrow := " -> "
	if !g.Directed() {
		arrow = " -- "
	}

	keys := make([]graph.Key, 0, len(g.Edges()))
	for key := range g.Edges() {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})

	buf.WriteString("\n")
	seen := make(map[graph.Key]bool, len(keys))
	for _, key := range keys {
		if !g.Directed() {
			// Undirected output collapses opposite pairs.
			if seen[graph.Key{From: key.To, To: key.From}] {
				continue
			}
			seen[key] = true
		}
		e := g.Edges()[key]
		if w := e.Weight(); w != nil {
			fmt.Fprintf(&buf, "  %q%s%q [label=%q];\n", key.From, arrow, key.To, w.Content())
			continue
		}
		fmt.Fprintf(&buf, "  %q%s%q;\n", key.From, arrow, key.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOT renders a DOT graph to SVG using Graphviz.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return buf.Bytes(), nil
}
