package widget

import (
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
)

// Stack container sizing: capacity is fixed at construction from the
// initial contents plus three cells of headroom, never below seven cells.
// The walls are decorative; pushing past capacity overflows the mouth.
const (
	stackHeadroomCells = 3
	stackMinCells      = 7
	stackWallPad       = 0.25
)

// Stack is a vertical sequence of elements growing upward inside an open
// three-sided container. New elements drop in from a spawn point above
// the container mouth.
type Stack struct {
	*Collection

	left   *scene.Line
	right  *scene.Line
	bottom *scene.Line

	capacity int // wall height in cells, fixed at construction
	spawn    geom.Vec
}

// StackOption configures a new Stack.
type StackOption func(*stackConfig)

type stackConfig struct {
	margin float64
	style  style.Collection
}

// WithStackMargin sets the gap between stacked cells.
func WithStackMargin(margin float64) StackOption {
	return func(c *stackConfig) { c.margin = margin }
}

// WithStackStyle sets the style record.
func WithStackStyle(st style.Collection) StackOption {
	return func(c *stackConfig) { c.style = st }
}

// NewStack creates a stack holding values, bottom first.
func NewStack(values []string, opts ...StackOption) *Stack {
	cfg := stackConfig{
		margin: DefaultMargin,
		style:  style.DefaultCollection(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Stack{Collection: newCollection(values, geom.Up, cfg.margin, cfg.style)}
	s.capacity = len(values) + stackHeadroomCells
	if s.capacity < stackMinCells {
		s.capacity = stackMinCells
	}
	s.buildContainer()
	s.recompute()

	// Keep the spawn point and wall geometry derived from the current
	// placement, so user transforms (shift, scale) carry them along.
	s.AddUpdater(func(*scene.Group) { s.recompute() })
	return s
}

// buildContainer creates the three container lines and attaches them.
func (s *Stack) buildContainer() {
	ls := s.style.Container
	s.left = scene.NewLine(ls)
	s.right = scene.NewLine(ls)
	s.bottom = scene.NewLine(ls)
	s.layoutContainer()
	s.Attach(s.left)
	s.Attach(s.right)
	s.Attach(s.bottom)
}

// layoutContainer sizes the walls from the fixed capacity and the cell
// geometry and seats them around the base slot.
func (s *Stack) layoutContainer() {
	cellW := s.hidden.cell.W()
	cellH := s.hidden.cell.H()

	wallH := float64(s.capacity) * (cellH + s.margin)
	halfW := cellW/2 + stackWallPad

	base := s.baseCenter()
	floor := base.Add(geom.Down.Scale(cellH/2 + stackWallPad))

	s.bottom.SetEndpoints(
		geom.Vec{X: floor.X - halfW, Y: floor.Y},
		geom.Vec{X: floor.X + halfW, Y: floor.Y},
	)
	s.left.SetEndpoints(
		geom.Vec{X: floor.X - halfW, Y: floor.Y},
		geom.Vec{X: floor.X - halfW, Y: floor.Y + wallH},
	)
	s.right.SetEndpoints(
		geom.Vec{X: floor.X + halfW, Y: floor.Y},
		geom.Vec{X: floor.X + halfW, Y: floor.Y + wallH},
	)
}

// baseCenter returns the cell center of the bottom slot.
func (s *Stack) baseCenter() geom.Vec {
	if len(s.elements) > 0 {
		return s.elements[0].cell.Center()
	}
	return s.hidden.cell.Center()
}

// recompute re-derives the spawn point from the container: one cell
// height above the mouth of the right wall.
func (s *Stack) recompute() {
	cellH := s.hidden.cell.H()
	wallH := s.right.Length()
	s.spawn = s.bottom.Bounds().Center.
		Add(geom.Up.Scale(wallH)).
		Add(geom.Up.Scale(cellH))
}

// SpawnPoint returns where new elements appear before sliding into their
// slot.
func (s *Stack) SpawnPoint() geom.Vec { return s.spawn }

// Push adds value on top of the stack.
func (s *Stack) Push(value string) *Stack {
	s.append(value)
	return s
}

// PushAnim pushes value and returns a timeline that draws the new element
// in at the spawn point and slides it down into its slot. The logical
// mutation is immediate; the staging (element parked at the spawn point)
// is resolved when the timeline plays or finishes.
func (s *Stack) PushAnim(value string) *anim.Timeline {
	s.Push(value)
	elem := s.elements[len(s.elements)-1]

	slot := elem.Center()
	start := s.cellAlignedCenter(elem, s.spawn)
	elem.MoveTo(start)

	tl := anim.Succession(
		anim.Create(elem),
		anim.MoveBetween(elem, start, slot),
	)
	tl.OnFinish(func() { elem.MoveTo(slot) })
	return tl
}

// Pop removes the top element. Popping an empty stack is a no-op.
func (s *Stack) Pop() *Stack {
	s.popAt(len(s.elements) - 1)
	return s
}

// PopAnim removes the top element, returning a timeline that lifts it out
// through the spawn point and fades it there. The departing element stays
// attached until the timeline finishes.
func (s *Stack) PopAnim() *anim.Timeline {
	if len(s.elements) == 0 {
		return anim.Succession()
	}
	popped := s.elements[len(s.elements)-1]
	exit := s.cellAlignedCenter(popped, s.spawn)

	s.Pop()
	s.Attach(popped)

	tl := anim.Succession(
		anim.Move(popped, exit),
		anim.FadeOut(popped),
	)
	tl.OnFinish(func() {
		s.Detach(popped)
		popped.SetOpacity(1)
	})
	return tl
}

// Peek returns the top element without removing it; nil when empty.
func (s *Stack) Peek() *Element {
	if len(s.elements) == 0 {
		return nil
	}
	return s.elements[len(s.elements)-1]
}

// AddLabel places the stack's caption relative to the container rather
// than the (growing) element run, so it stays put across pushes.
func (s *Stack) AddLabel(text string, dir geom.Vec, buff float64) {
	s.label = scene.NewText(text, s.style.Label)
	box := s.bottom.Bounds().Union(s.left.Bounds()).Union(s.right.Bounds())
	s.label.MoveTo(box.NextTo(s.label.Width(), s.label.Height(), dir.Unit(), buff))
	s.Attach(s.label)
}
