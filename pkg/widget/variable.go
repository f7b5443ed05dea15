package widget

import (
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
)

// DefaultLabelBuff is the gap between a variable's cell and its name
// label.
const DefaultLabelBuff = 0.4

// Variable is a single labeled cell: a name next to a boxed value.
// It tracks one value and animates its own updates.
type Variable struct {
	*scene.Group

	elem  *Element
	name  *scene.Text
	style style.Collection
}

// NewVariable creates a labeled cell showing name = value.
func NewVariable(name, value string, opts ...VariableOption) *Variable {
	cfg := variableConfig{
		style:    style.DefaultCollection(),
		labelDir: geom.Left,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &Variable{
		Group: scene.NewGroup(),
		elem:  NewElement(cfg.style.Cell, cfg.style.Value, value),
		style: cfg.style,
	}
	v.name = scene.NewText(name+" =", cfg.style.Label)
	v.name.MoveTo(v.elem.cell.Bounds().NextTo(v.name.Width(), v.name.Height(), cfg.labelDir, DefaultLabelBuff))
	v.Attach(v.elem)
	v.Attach(v.name)
	v.MoveTo(geom.Zero)
	return v
}

// VariableOption configures a new Variable.
type VariableOption func(*variableConfig)

type variableConfig struct {
	style    style.Collection
	labelDir geom.Vec
}

// WithVariableStyle sets the style record.
func WithVariableStyle(st style.Collection) VariableOption {
	return func(c *variableConfig) { c.style = st }
}

// WithVariableLabelDir places the name label on the given side of the
// cell (default left).
func WithVariableLabelDir(dir geom.Vec) VariableOption {
	return func(c *variableConfig) { c.labelDir = dir.Unit() }
}

// Value returns the current value.
func (v *Variable) Value() string { return v.elem.Value() }

// Element returns the variable's boxed element.
func (v *Variable) Element() *Element { return v.elem }

// Name returns the name label text object.
func (v *Variable) Name() *scene.Text { return v.name }

// SetValue replaces the value in place.
func (v *Variable) SetValue(value string) *Variable {
	v.elem.SetValue(value)
	return v
}

// SetValueAnim replaces the value and returns an indication transition
// on the value text.
func (v *Variable) SetValueAnim(value string) *anim.Timeline {
	return anim.Succession(v.elem.SetValueAnim(value))
}

// Highlight outlines the variable's cell.
func (v *Variable) Highlight(h style.Highlight) *Variable {
	v.elem.Highlight(h)
	return v
}

// Unhighlight removes the outline.
func (v *Variable) Unhighlight() *Variable {
	v.elem.Unhighlight()
	return v
}
