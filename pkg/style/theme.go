package style

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vizlab/dsanim/pkg/errors"
)

// Theme is the TOML-loadable bundle of widget styles. Sections left out of
// the file keep their compiled-in defaults, so a theme file only needs to
// name the fields it changes:
//
//	[collection.cell]
//	stroke = "#9cdceb"
//	fill = "#236b8e"
//	fill_opacity = 1.0
//
//	[graph.node_circle]
//	radius = 0.4
type Theme struct {
	Collection CollectionTheme `toml:"collection"`
	Graph      GraphTheme      `toml:"graph"`
}

// CollectionTheme mirrors Collection with optional TOML fields.
type CollectionTheme struct {
	Cell      ShapeTheme `toml:"cell"`
	Value     TextTheme  `toml:"value"`
	Index     TextTheme  `toml:"index"`
	Container ShapeTheme `toml:"container"`
	Label     TextTheme  `toml:"label"`
}

// GraphTheme mirrors Graph with optional TOML fields.
type GraphTheme struct {
	NodeCircle ShapeTheme `toml:"node_circle"`
	NodeLabel  TextTheme  `toml:"node_label"`
	EdgeLine   ShapeTheme `toml:"edge_line"`
	EdgeWeight TextTheme  `toml:"edge_weight"`
	Label      TextTheme  `toml:"label"`
}

// ShapeTheme holds optional shape overrides. Nil pointers mean "keep default".
type ShapeTheme struct {
	Stroke      *string  `toml:"stroke"`
	StrokeWidth *float64 `toml:"stroke_width"`
	Fill        *string  `toml:"fill"`
	FillOpacity *float64 `toml:"fill_opacity"`
	Width       *float64 `toml:"width"`
	Height      *float64 `toml:"height"`
	Radius      *float64 `toml:"radius"`
}

// TextTheme holds optional text overrides.
type TextTheme struct {
	Color *string  `toml:"color"`
	Font  *string  `toml:"font"`
	Size  *float64 `toml:"size"`
	Bold  *bool    `toml:"bold"`
}

// LoadTheme reads a TOML theme file and applies it on top of the stock
// defaults, returning the resulting styles.
func LoadTheme(path string) (Collection, Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Collection{}, Graph{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}

	var th Theme
	if err := toml.Unmarshal(data, &th); err != nil {
		return Collection{}, Graph{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme %s", path)
	}

	return th.ApplyCollection(DefaultCollection()), th.ApplyGraph(DefaultGraph()), nil
}

// ApplyCollection overlays the theme's collection overrides onto base.
func (th Theme) ApplyCollection(base Collection) Collection {
	base.Cell = th.Collection.Cell.apply(base.Cell)
	base.Value = th.Collection.Value.apply(base.Value)
	base.Index = th.Collection.Index.apply(base.Index)
	base.Container = th.Collection.Container.apply(base.Container)
	base.Label = th.Collection.Label.apply(base.Label)
	return base
}

// ApplyGraph overlays the theme's graph overrides onto base.
func (th Theme) ApplyGraph(base Graph) Graph {
	base.NodeCircle = th.Graph.NodeCircle.apply(base.NodeCircle)
	base.NodeLabel = th.Graph.NodeLabel.apply(base.NodeLabel)
	base.EdgeLine = th.Graph.EdgeLine.apply(base.EdgeLine)
	base.EdgeWeight = th.Graph.EdgeWeight.apply(base.EdgeWeight)
	base.Label = th.Graph.Label.apply(base.Label)
	return base
}

func (s ShapeTheme) apply(base Shape) Shape {
	if s.Stroke != nil {
		base.Stroke = Color(*s.Stroke)
	}
	if s.StrokeWidth != nil {
		base.StrokeWidth = *s.StrokeWidth
	}
	if s.Fill != nil {
		base.Fill = Color(*s.Fill)
	}
	if s.FillOpacity != nil {
		base.FillOpacity = *s.FillOpacity
	}
	if s.Width != nil {
		base.Width = *s.Width
	}
	if s.Height != nil {
		base.Height = *s.Height
	}
	if s.Radius != nil {
		base.Radius = *s.Radius
	}
	return base
}

func (t TextTheme) apply(base Text) Text {
	if t.Color != nil {
		base.Color = Color(*t.Color)
	}
	if t.Font != nil {
		base.Font = *t.Font
	}
	if t.Size != nil {
		base.Size = *t.Size
	}
	if t.Bold != nil {
		base.Bold = *t.Bold
	}
	return base
}
