package widget

import (
	"math"
	"strconv"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
)

// Collection is the ordered-sequence core shared by Array and Stack:
// elements laid out contiguously along a growth direction with a fixed
// margin, kept in lockstep with their visual counterparts.
//
// A hidden zero-opacity template element anchors the layout and carries
// the current cell geometry: when a caller scales the whole widget, the
// template scales with it, and the next Append reads the cell size and
// font size back from the template so new elements match.
type Collection struct {
	*scene.Group

	elements []*Element
	dir      geom.Vec
	margin   float64
	style    style.Collection

	hidden *Element
	label  *scene.Text
}

func newCollection(values []string, dir geom.Vec, margin float64, st style.Collection) *Collection {
	c := &Collection{
		Group:  scene.NewGroup(),
		dir:    dir.Unit(),
		margin: margin,
		style:  st,
	}

	hiddenStyle := st.Cell
	hiddenStyle.FillOpacity = 0
	c.hidden = NewElement(hiddenStyle, st.Value, "0")
	c.hidden.SetOpacity(0)
	c.Attach(c.hidden)

	for _, v := range values {
		c.append(v)
	}
	c.MoveTo(geom.Zero)
	return c
}

// Len returns the number of elements.
func (c *Collection) Len() int { return len(c.elements) }

// Values returns the element values in order.
func (c *Collection) Values() []string {
	out := make([]string, len(c.elements))
	for i, e := range c.elements {
		out[i] = e.Value()
	}
	return out
}

// At returns the element at position i, or an INDEX_OUT_OF_RANGE error.
func (c *Collection) At(i int) (*Element, error) {
	if i < 0 || i >= len(c.elements) {
		return nil, errors.New(errors.ErrCodeIndexOutOfRange, "index %d out of [0, %d)", i, len(c.elements))
	}
	return c.elements[i], nil
}

// Elements returns the elements in order. The slice is shared; callers
// must not modify it.
func (c *Collection) Elements() []*Element { return c.elements }

// Style returns the collection's current style record.
func (c *Collection) Style() style.Collection { return c.style }

// Dir returns the growth direction.
func (c *Collection) Dir() geom.Vec { return c.dir }

// refreshStyle reads the cell geometry and font size back from the hidden
// template so elements appended after a user transform match the current
// scale.
func (c *Collection) refreshStyle() {
	c.style.Cell.Width = c.hidden.cell.W()
	c.style.Cell.Height = c.hidden.cell.H()
	c.style.Value.Size = c.hidden.value.FontSize()
}

// append creates, places, and attaches a new element holding value.
func (c *Collection) append(value string) *Element {
	c.refreshStyle()
	elem := NewElement(c.style.Cell, c.style.Value, value)
	c.place(elem)
	return elem
}

// place positions elem after the current last element (or on the hidden
// template when the collection is empty) and attaches it.
func (c *Collection) place(elem *Element) {
	if n := len(c.elements); n > 0 {
		prev := c.elements[n-1].cell.Bounds()
		target := prev.NextTo(elem.cell.W(), elem.cell.H(), c.dir, c.margin)
		elem.MoveTo(c.cellAlignedCenter(elem, target))
	} else {
		elem.MoveTo(c.cellAlignedCenter(elem, c.hidden.cell.Center()))
	}
	c.elements = append(c.elements, elem)
	c.Attach(elem)
}

// cellAlignedCenter returns the group center that puts elem's cell center
// on target. The element group may be wider than its cell (index caption,
// label), so cells are aligned rather than group bounds.
func (c *Collection) cellAlignedCenter(elem *Element, target geom.Vec) geom.Vec {
	return elem.Center().Add(target.Sub(elem.cell.Center()))
}

// popAt removes the element at index i, detaches it, and re-packs every
// later element one cell-width back along the growth direction. Popping
// an empty collection is a documented no-op. The removed element is
// returned for staging exit animations; nil means nothing was removed.
func (c *Collection) popAt(i int) *Element {
	if len(c.elements) == 0 {
		return nil
	}
	if i < 0 || i >= len(c.elements) {
		return nil
	}
	popped := c.elements[i]
	c.Detach(popped)
	c.elements = append(c.elements[:i], c.elements[i+1:]...)

	shift := c.dir.Scale(c.step(popped) + c.margin).Neg()
	for _, e := range c.elements[i:] {
		e.Shift(shift)
	}
	return popped
}

// Swap exchanges both the logical slots and the visual placements of
// elements i and j. Index captions (when present) keep their slots: the
// caption objects are exchanged between the two elements so each slot
// keeps showing its own position.
func (c *Collection) Swap(i, j int) error {
	if err := c.checkBounds(i); err != nil {
		return err
	}
	if err := c.checkBounds(j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	c.visualSwap(i, j)
	c.logicSwap(i, j)
	return nil
}

// SwapAnim swaps and returns arc-move transitions for both elements.
func (c *Collection) SwapAnim(i, j int) (*anim.Timeline, error) {
	if err := c.checkBounds(i); err != nil {
		return nil, err
	}
	if err := c.checkBounds(j); err != nil {
		return nil, err
	}
	ei, ej := c.elements[i], c.elements[j]
	from, to := ei.cell.Center(), ej.cell.Center()

	c.visualSwap(i, j)
	c.logicSwap(i, j)

	return anim.Succession(
		anim.MoveBetween(pairGroup(ei), from, to),
		anim.MoveBetween(pairGroup(ej), to, from),
	), nil
}

// pairGroup wraps an element's cell and value (not its index caption) so
// swap transitions move the pair while captions stay at their slots.
func pairGroup(e *Element) *scene.Group {
	g := scene.NewGroup()
	g.Attach(e.cell)
	g.Attach(e.value)
	return g
}

// visualSwap exchanges the on-screen placement of the two cell+value
// pairs, leaving index captions in place.
func (c *Collection) visualSwap(i, j int) {
	ei, ej := c.elements[i], c.elements[j]
	di := ej.cell.Center().Sub(ei.cell.Center())

	for _, o := range []scene.Object{ei.cell, ei.value} {
		o.Shift(di)
	}
	for _, o := range []scene.Object{ej.cell, ej.value} {
		o.Shift(di.Neg())
	}
	ei.syncHighlight()
	ej.syncHighlight()
}

// logicSwap exchanges the logical slots. Both elements are detached and
// re-attached around the slice swap so draw order and highlight stacking
// stay correct.
func (c *Collection) logicSwap(i, j int) {
	ei, ej := c.elements[i], c.elements[j]
	c.Detach(ei)
	c.Detach(ej)

	c.elements[i], c.elements[j] = ej, ei
	ei.swapIndexWith(ej)

	c.Attach(c.elements[i])
	c.Attach(c.elements[j])
}

// step returns the packing distance one element occupies along the
// growth axis: its cell width for horizontal growth, its cell height for
// vertical growth.
func (c *Collection) step(e *Element) float64 {
	return math.Abs(c.dir.X)*e.cell.W() + math.Abs(c.dir.Y)*e.cell.H()
}

func (c *Collection) checkBounds(i int) error {
	if i < 0 || i >= len(c.elements) {
		return errors.New(errors.ErrCodeIndexOutOfRange, "index %d out of [0, %d)", i, len(c.elements))
	}
	return nil
}

// AddLabel attaches a caption to the whole collection. When the label
// direction runs along the growth direction the caption anchors to the
// end element on that side instead of the collection bounds, so it does
// not drift as the collection grows.
func (c *Collection) AddLabel(text string, dir geom.Vec, buff float64) {
	c.label = scene.NewText(text, c.style.Label)

	var ref geom.Rect
	switch {
	case c.dir.Eq(dir.Unit(), 1e-9) && len(c.elements) > 0:
		ref = c.elements[len(c.elements)-1].cell.Bounds()
	case c.dir.Eq(dir.Unit().Neg(), 1e-9) && len(c.elements) > 0:
		ref = c.elements[0].cell.Bounds()
	default:
		ref = c.Bounds()
	}
	c.label.MoveTo(ref.NextTo(c.label.Width(), c.label.Height(), dir.Unit(), buff))
	c.Attach(c.label)
}

// Label returns the collection's caption, or nil.
func (c *Collection) Label() *scene.Text { return c.label }

// AttachedElements counts elements currently attached to the group.
// The synchronization invariant is Len() == AttachedElements() at every
// quiescent point.
func (c *Collection) AttachedElements() int {
	n := 0
	for _, e := range c.elements {
		if c.Contains(e) {
			n++
		}
	}
	return n
}

func itoa(i int) string { return strconv.Itoa(i) }
