package graph

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/layout"
)

// Neighbor is one entry of an adjacency list: a destination node and an
// optional weight.
type Neighbor struct {
	Name   string
	Weight string // empty for unweighted edges
}

// UnmarshalJSON accepts the three neighbor spellings:
//
//	"B"                       unweighted
//	["B", 3]                  weighted (number or string)
//	{"name": "B", "weight": 3}
func (n *Neighbor) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		n.Name = name
		n.Weight = ""
		return nil
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return errors.New(errors.ErrCodeInvalidInput, "neighbor pair must have exactly two entries, got %d", len(pair))
		}
		if err := json.Unmarshal(pair[0], &n.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "neighbor name")
		}
		w, err := scalarString(pair[1])
		if err != nil {
			return err
		}
		n.Weight = w
		return nil
	}

	var obj struct {
		Name   string          `json:"name"`
		Weight json.RawMessage `json:"weight"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "neighbor entry")
	}
	if obj.Name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "neighbor entry is missing a name")
	}
	n.Name = obj.Name
	if len(obj.Weight) > 0 {
		w, err := scalarString(obj.Weight)
		if err != nil {
			return err
		}
		n.Weight = w
	}
	return nil
}

// scalarString renders a JSON string or number as text.
func scalarString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String(), nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "weight must be a string or a number, got %s", string(raw))
}

// Adjacency maps each node to its outgoing neighbor list.
type Adjacency map[string][]Neighbor

// ParseAdjacency decodes adjacency JSON. Two top-level shapes are
// accepted: a map keyed by node name, or an array of neighbor lists where
// position i names the node "i".
func ParseAdjacency(data []byte) (Adjacency, error) {
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '[' {
		var rows [][]Neighbor
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "adjacency list")
		}
		adj := make(Adjacency, len(rows))
		for i, row := range rows {
			adj[strconv.Itoa(i)] = row
		}
		return adj, nil
	}

	var adj Adjacency
	if err := json.Unmarshal(data, &adj); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "adjacency map")
	}
	return adj, nil
}

// FromAdjacency builds a graph widget from an adjacency map: every key
// and every referenced neighbor becomes a node, every entry becomes an
// edge, and the nodes are placed with the default layout. Listing both
// directions of a pair yields the usual opposite-pair rendering; listing
// the same direction twice is an error.
func FromAdjacency(adj Adjacency, opts ...Option) (*Graph, error) {
	g := New(opts...)

	names := make(map[string]bool, len(adj))
	for from, neighbors := range adj {
		names[from] = true
		for _, nb := range neighbors {
			names[nb.Name] = true
		}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	for _, name := range sorted {
		if _, err := g.AddNode(name, geom.Zero); err != nil {
			return nil, err
		}
	}

	for _, from := range sorted {
		for _, nb := range adj[from] {
			var eopts []EdgeOption
			if nb.Weight != "" {
				eopts = append(eopts, WithWeight(nb.Weight))
			}
			if _, err := g.AddEdge(from, nb.Name, eopts...); err != nil {
				return nil, err
			}
		}
	}

	if err := g.Layout(layout.Default); err != nil {
		return nil, err
	}
	return g, nil
}
