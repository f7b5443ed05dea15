package graph

import (
	"testing"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
)

func TestParseAdjacency(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		node    string
		want    []Neighbor
		wantErr bool
	}{
		{
			name: "unweighted list",
			json: `{"A": ["B", "C"], "B": [], "C": []}`,
			node: "A",
			want: []Neighbor{{Name: "B"}, {Name: "C"}},
		},
		{
			name: "weighted pairs",
			json: `{"A": [["B", 3], ["C", "x"]]}`,
			node: "A",
			want: []Neighbor{{Name: "B", Weight: "3"}, {Name: "C", Weight: "x"}},
		},
		{
			name: "object form",
			json: `{"A": [{"name": "B", "weight": 2.5}]}`,
			node: "A",
			want: []Neighbor{{Name: "B", Weight: "2.5"}},
		},
		{
			name:    "bad pair arity",
			json:    `{"A": [["B", 3, 4]]}`,
			wantErr: true,
		},
		{
			name:    "bad weight type",
			json:    `{"A": [["B", [3]]]}`,
			wantErr: true,
		},
		{
			name:    "missing name",
			json:    `{"A": [{"weight": 3}]}`,
			wantErr: true,
		},
		{
			name: "positional list",
			json: `[["1", "2"], ["0"], ["0"]]`,
			node: "0",
			want: []Neighbor{{Name: "1"}, {Name: "2"}},
		},
		{
			name: "positional weighted list",
			json: `[[["1", 4]], []]`,
			node: "0",
			want: []Neighbor{{Name: "1", Weight: "4"}},
		},
		{
			name:    "scalar document",
			json:    `"A"`,
			wantErr: true,
		},
		{
			name:    "bad positional row",
			json:    `[3]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, err := ParseAdjacency([]byte(tt.json))
			if tt.wantErr {
				if errors.GetCode(err) != errors.ErrCodeInvalidInput {
					t.Fatalf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAdjacency: %v", err)
			}
			got := adj[tt.node]
			if len(got) != len(tt.want) {
				t.Fatalf("neighbors = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("neighbor %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFromAdjacency(t *testing.T) {
	adj, err := ParseAdjacency([]byte(`{
		"A": [["B", 3], ["C", 1]],
		"B": [["C", 7]],
		"C": []
	}`))
	if err != nil {
		t.Fatalf("ParseAdjacency: %v", err)
	}

	g, err := FromAdjacency(adj, WithDirected())
	if err != nil {
		t.Fatalf("FromAdjacency: %v", err)
	}
	if g.Len() != 3 {
		t.Errorf("node count = %d, want 3", g.Len())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("edge count = %d, want 3", g.EdgeCount())
	}

	e, err := g.Edge("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if e.Weight() == nil || e.Weight().Content() != "3" {
		t.Errorf("edge A->B weight missing or wrong")
	}
	if !e.HasArrow() {
		t.Error("directed adjacency edge should carry an arrowhead")
	}

	// Nodes were laid out, not left stacked on the origin.
	positions := map[geom.Vec]bool{}
	for _, name := range g.NodeNames() {
		n, _ := g.Node(name)
		positions[n.Pos()] = true
	}
	if len(positions) != g.Len() {
		t.Error("layout left nodes overlapping")
	}
}

func TestFromAdjacencyBothDirections(t *testing.T) {
	adj := Adjacency{
		"A": {{Name: "B"}},
		"B": {{Name: "A"}},
	}
	g, err := FromAdjacency(adj, WithDirected())
	if err != nil {
		t.Fatalf("FromAdjacency: %v", err)
	}

	ab, err := g.Edge("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	ba, err := g.Edge("B", "A")
	if err != nil {
		t.Fatal(err)
	}
	if !ab.paired || !ba.paired {
		t.Error("mutual adjacency entries should pair-shift")
	}
	if ab.HasArrow() == ba.HasArrow() {
		t.Error("exactly one direction should carry the arrowhead")
	}
}
