package widget

import (
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
)

// Element is the atomic visual unit of a collection: a cell rectangle with
// a value text centered in it, plus an optional highlight overlay, an
// optional index caption, and an optional external label.
type Element struct {
	*scene.Group

	cell  *scene.Rect
	value *scene.Text

	highlight *scene.Rect // overlay outline, nil until first Highlight
	index     *scene.Text // index caption, nil unless indexing enabled
	label     *scene.Text
}

// NewElement creates an element showing value, styled by cell and text
// styles. The value text is centered in the cell.
func NewElement(cellStyle style.Shape, valueStyle style.Text, value string) *Element {
	e := &Element{
		Group: scene.NewGroup(),
		cell:  scene.NewRect(cellStyle),
		value: scene.NewText(value, valueStyle),
	}
	e.value.MoveTo(e.cell.Center())
	e.value.SetZ(1)
	e.Attach(e.cell)
	e.Attach(e.value)
	return e
}

// Cell returns the element's rectangle.
func (e *Element) Cell() *scene.Rect { return e.cell }

// Value returns the element's current value text.
func (e *Element) Value() string { return e.value.Content() }

// ValueText returns the underlying text object.
func (e *Element) ValueText() *scene.Text { return e.value }

// SetValue replaces the element's value in place, keeping the text's
// position and transform so running animations stay continuous.
func (e *Element) SetValue(value string) *Element {
	e.value.SetContent(value)
	return e
}

// SetValueAnim replaces the value and returns an indication transition on
// the value text.
func (e *Element) SetValueAnim(value string) anim.Animation {
	e.SetValue(value)
	return anim.Indicate(e.value)
}

// Highlight attaches a highlight overlay: an outline clone of the cell
// with the given stroke, drawn above it. Calling Highlight again restyles
// and resyncs the existing overlay.
func (e *Element) Highlight(h style.Highlight) *Element {
	if e.highlight == nil {
		e.highlight = e.cell.Clone()
	}
	e.highlight.Style = e.highlight.Style.WithFill("", 0).WithStroke(h.Stroke)
	e.highlight.Style.StrokeWidth = h.Width
	e.syncHighlight()
	e.highlight.SetZ(e.cell.Z() + 1)
	e.Attach(e.highlight)
	return e
}

// HighlightAnim highlights and returns the overlay's create transition.
func (e *Element) HighlightAnim(h style.Highlight) anim.Animation {
	e.Highlight(h)
	return anim.Create(e.highlight)
}

// Unhighlight detaches the highlight overlay.
func (e *Element) Unhighlight() *Element {
	if e.highlight != nil {
		e.Detach(e.highlight)
	}
	return e
}

// UnhighlightAnim detaches the overlay after a fade-out transition.
func (e *Element) UnhighlightAnim() *anim.Timeline {
	if e.highlight == nil {
		return anim.Succession()
	}
	hl := e.highlight
	tl := anim.Succession(anim.FadeOut(hl))
	tl.OnFinish(func() {
		e.Detach(hl)
		hl.SetOpacity(1)
	})
	return tl
}

// Highlighted reports whether the overlay is currently attached.
func (e *Element) Highlighted() bool {
	return e.highlight != nil && e.Contains(e.highlight)
}

// syncHighlight matches the overlay to the cell's current size and
// position. The overlay is a sibling child of the same group, so ordinary
// group transforms keep it in sync; this re-match covers direct cell
// mutation (style cache refresh, swaps).
func (e *Element) syncHighlight() {
	if e.highlight == nil {
		return
	}
	e.highlight.Resize(e.cell.W(), e.cell.H())
	e.highlight.MoveTo(e.cell.Center())
}

// HasIndex reports whether the element carries an index caption.
func (e *Element) HasIndex() bool { return e.index != nil }

// Index returns the index caption text object, or nil.
func (e *Element) Index() *scene.Text { return e.index }

// AddIndexCaption attaches caption next to the cell in direction dir at
// distance buff.
func (e *Element) AddIndexCaption(caption *scene.Text, dir geom.Vec, buff float64) {
	caption.MoveTo(e.cell.Bounds().NextTo(caption.Width(), caption.Height(), dir, buff))
	e.index = caption
	e.Attach(caption)
}

// swapIndexWith exchanges the index caption objects of two elements,
// detaching and re-attaching so draw order stays correct.
func (e *Element) swapIndexWith(o *Element) {
	if e.index == nil || o.index == nil {
		return
	}
	e.Detach(e.index)
	o.Detach(o.index)
	e.index, o.index = o.index, e.index
	e.Attach(e.index)
	o.Attach(o.index)
}

// replaceIndex swaps in a new caption object, detaching the old one.
// The returned text is the previous caption.
func (e *Element) replaceIndex(caption *scene.Text) *scene.Text {
	old := e.index
	if old != nil {
		e.Detach(old)
	}
	e.index = caption
	if caption != nil {
		e.Attach(caption)
	}
	return old
}

// AddLabel attaches an external caption positioned relative to the
// element.
func (e *Element) AddLabel(text string, ts style.Text, dir geom.Vec, buff float64) *Element {
	e.label = scene.NewText(text, ts)
	b := e.Bounds()
	e.label.MoveTo(b.NextTo(e.label.Width(), e.label.Height(), dir, buff))
	e.Attach(e.label)
	return e
}

// Label returns the element's label text object, or nil.
func (e *Element) Label() *scene.Text { return e.label }
