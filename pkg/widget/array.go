package widget

import (
	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
)

// DefaultMargin is the gap between adjacent cells.
const DefaultMargin = 0.0

// DefaultIndexBuff is the gap between a cell and its index caption.
const DefaultIndexBuff = 0.25

// Array is a horizontal (or caller-directed) sequence of elements with
// optional per-slot index captions.
type Array struct {
	*Collection

	indexDir  geom.Vec
	indexBuff float64
	indexed   bool
}

// ArrayOption configures a new Array.
type ArrayOption func(*arrayConfig)

type arrayConfig struct {
	dir    geom.Vec
	margin float64
	style  style.Collection
}

// WithArrayDir sets the growth direction (default right).
func WithArrayDir(dir geom.Vec) ArrayOption {
	return func(c *arrayConfig) { c.dir = dir }
}

// WithArrayMargin sets the gap between adjacent cells.
func WithArrayMargin(margin float64) ArrayOption {
	return func(c *arrayConfig) { c.margin = margin }
}

// WithArrayStyle sets the style record.
func WithArrayStyle(st style.Collection) ArrayOption {
	return func(c *arrayConfig) { c.style = st }
}

// NewArray creates an array holding values, growing rightward by default.
func NewArray(values []string, opts ...ArrayOption) *Array {
	cfg := arrayConfig{
		dir:    geom.Right,
		margin: DefaultMargin,
		style:  style.DefaultCollection(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Array{Collection: newCollection(values, cfg.dir, cfg.margin, cfg.style)}
}

// AddIndexes attaches an index caption to every element, placed in
// direction dir at distance buff from each cell. The direction must not
// run along the growth axis; captions sliding into neighbouring cells
// would be unreadable. Calling AddIndexes again is a no-op.
func (a *Array) AddIndexes(dir geom.Vec, buff float64) error {
	if a.indexed {
		return nil
	}
	if dir.Parallel(a.Dir()) {
		return errors.New(errors.ErrCodeInvalidDirection,
			"index direction %v is parallel to the growth direction %v", dir, a.Dir())
	}
	a.indexDir = dir.Unit()
	a.indexBuff = buff
	a.indexed = true

	for i, e := range a.elements {
		e.AddIndexCaption(a.newCaption(i), a.indexDir, a.indexBuff)
	}
	return nil
}

// Indexed reports whether index captions are shown.
func (a *Array) Indexed() bool { return a.indexed }

func (a *Array) newCaption(i int) *scene.Text {
	a.refreshStyle()
	return scene.NewText(itoa(i), a.style.Index)
}

// Append adds value at the end of the array.
func (a *Array) Append(value string) *Array {
	elem := a.append(value)
	if a.indexed {
		elem.AddIndexCaption(a.newCaption(len(a.elements)-1), a.indexDir, a.indexBuff)
	}
	return a
}

// AppendAnim appends and returns a write-in transition for the new
// element.
func (a *Array) AppendAnim(value string) *anim.Timeline {
	a.Append(value)
	elem := a.elements[len(a.elements)-1]
	return anim.Succession(anim.Write(elem))
}

// Pop removes the last element. Popping an empty array is a no-op.
func (a *Array) Pop() *Array {
	return a.PopAt(len(a.elements) - 1)
}

// PopAt removes the element at index i and re-packs the later elements.
// Index captions stay bound to slots, not elements: each surviving
// element past i inherits the caption of its new slot, and the highest
// caption disappears with the popped element.
func (a *Array) PopAt(i int) *Array {
	n := len(a.elements)
	popped := a.popAt(i)
	if popped == nil {
		return a
	}
	if a.indexed && i < n-1 {
		a.slideCaptions(i, popped)
	}
	return a
}

// PopAnim removes the last element with a fade-out transition.
func (a *Array) PopAnim() *anim.Timeline {
	return a.PopAtAnim(len(a.elements) - 1)
}

// PopAtAnim removes the element at i, returning a timeline that fades
// the departing element out and slides the later elements back into
// place. The logical mutation is applied immediately; the popped
// element stays attached until the timeline finishes (or is finished
// explicitly) so the exit transition has something to draw.
func (a *Array) PopAtAnim(i int) *anim.Timeline {
	n := len(a.elements)
	if n == 0 || i < 0 || i >= n {
		return anim.Succession()
	}

	popped := a.elements[i]
	// Record where each survivor's cell must end up before mutating.
	// Cell centers, not group centers: caption re-binding changes the
	// group bounds mid-pop.
	slide := a.Dir().Scale(a.step(popped) + a.margin).Neg()
	movers := append([]*Element(nil), a.elements[i+1:]...)
	cellTargets := make([]geom.Vec, len(movers))
	for k, e := range movers {
		cellTargets[k] = e.cell.Center().Add(slide)
	}

	a.PopAt(i)

	// PopAt already snapped the survivors into place; rewind them so
	// the slide transition can play, then fade the departing element.
	for k, e := range movers {
		e.MoveTo(a.cellAlignedCenter(e, cellTargets[k].Sub(slide)))
	}
	a.Attach(popped)

	tl := anim.Succession(anim.FadeOut(popped))
	for k, e := range movers {
		tl.Then(anim.Move(e, a.cellAlignedCenter(e, cellTargets[k])))
	}
	tl.OnFinish(func() {
		a.Detach(popped)
		popped.SetOpacity(1)
		for k, e := range movers {
			e.MoveTo(a.cellAlignedCenter(e, cellTargets[k]))
		}
	})
	return tl
}

// slideCaptions re-binds index captions to slots after the element at i
// was removed: each survivor past i takes the caption of the slot it now
// occupies, passing its old caption one place down the line. The popped
// element's caption (showing i) lands on the new occupant of slot i, and
// the highest caption is dropped.
func (a *Array) slideCaptions(i int, popped *Element) {
	carry := popped.replaceIndex(nil)
	for _, e := range a.elements[i:] {
		// Each caption keeps its screen identity and snaps to its new
		// element, so animated pops keep caption motion continuous.
		carry = e.replaceIndex(carry)
		a.positionCaption(e)
	}
	// carry now holds the caption of the vanished last slot.
	_ = carry
}

func (a *Array) positionCaption(e *Element) {
	if e.index == nil {
		return
	}
	e.index.MoveTo(e.cell.Bounds().NextTo(e.index.Width(), e.index.Height(), a.indexDir, a.indexBuff))
}

// SwapAnim swaps slots i and j. Overridden here to re-seat the slot
// captions after the element exchange.
func (a *Array) SwapAnim(i, j int) (*anim.Timeline, error) {
	tl, err := a.Collection.SwapAnim(i, j)
	if err != nil {
		return nil, err
	}
	a.reseatCaptions(i, j)
	return tl, nil
}

// Swap exchanges slots i and j without a transition.
func (a *Array) Swap(i, j int) error {
	if err := a.Collection.Swap(i, j); err != nil {
		return err
	}
	a.reseatCaptions(i, j)
	return nil
}

func (a *Array) reseatCaptions(i, j int) {
	if !a.indexed {
		return
	}
	if i >= 0 && i < len(a.elements) {
		a.positionCaption(a.elements[i])
	}
	if j >= 0 && j < len(a.elements) {
		a.positionCaption(a.elements[j])
	}
}
