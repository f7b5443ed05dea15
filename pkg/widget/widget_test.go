package widget

import (
	"math"
	"testing"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene/anim"
	"github.com/vizlab/dsanim/pkg/style"
)

func vecNear(a, b geom.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func captions(a *Array) []string {
	out := make([]string, 0, a.Len())
	for _, e := range a.Elements() {
		if e.Index() != nil {
			out = append(out, e.Index().Content())
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestArrayAppendPop(t *testing.T) {
	tests := []struct {
		name   string
		init   []string
		mutate func(a *Array)
		want   []string
	}{
		{
			name:   "append extends",
			init:   []string{"1", "2", "3"},
			mutate: func(a *Array) { a.Append("4") },
			want:   []string{"1", "2", "3", "4"},
		},
		{
			name:   "pop removes last",
			init:   []string{"1", "2", "3"},
			mutate: func(a *Array) { a.Pop() },
			want:   []string{"1", "2"},
		},
		{
			name:   "pop at head re-packs",
			init:   []string{"1", "2", "3"},
			mutate: func(a *Array) { a.PopAt(0) },
			want:   []string{"2", "3"},
		},
		{
			name:   "pop empty is a no-op",
			init:   nil,
			mutate: func(a *Array) { a.Pop() },
			want:   []string{},
		},
		{
			name: "append then pop head",
			init: []string{"1", "2", "3"},
			mutate: func(a *Array) {
				a.Append("4")
				a.PopAt(0)
			},
			want: []string{"2", "3", "4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArray(tt.init)
			tt.mutate(a)
			if got := a.Values(); !equalStrings(got, tt.want) {
				t.Errorf("values = %v, want %v", got, tt.want)
			}
			if a.Len() != a.AttachedElements() {
				t.Errorf("logical length %d != attached elements %d", a.Len(), a.AttachedElements())
			}
		})
	}
}

func TestArrayCellSpacing(t *testing.T) {
	a := NewArray([]string{"1", "2", "3"})
	cellW := a.Style().Cell.Width
	for i := 1; i < a.Len(); i++ {
		prev := a.Elements()[i-1].Cell().Center()
		cur := a.Elements()[i].Cell().Center()
		d := cur.Sub(prev)
		if !vecNear(d, geom.Right.Scale(cellW), 1e-9) {
			t.Errorf("cell %d offset = %v, want %v", i, d, geom.Right.Scale(cellW))
		}
	}
}

func TestArrayIndexes(t *testing.T) {
	t.Run("captions follow slots", func(t *testing.T) {
		a := NewArray([]string{"1", "2", "3"})
		if err := a.AddIndexes(geom.Down, DefaultIndexBuff); err != nil {
			t.Fatalf("AddIndexes: %v", err)
		}
		if got, want := captions(a), []string{"0", "1", "2"}; !equalStrings(got, want) {
			t.Fatalf("captions = %v, want %v", got, want)
		}

		a.Append("4")
		if got, want := captions(a), []string{"0", "1", "2", "3"}; !equalStrings(got, want) {
			t.Fatalf("after append, captions = %v, want %v", got, want)
		}

		a.PopAt(0)
		if got, want := a.Values(), []string{"2", "3", "4"}; !equalStrings(got, want) {
			t.Fatalf("after pop, values = %v, want %v", got, want)
		}
		if got, want := captions(a), []string{"0", "1", "2"}; !equalStrings(got, want) {
			t.Fatalf("after pop, captions = %v, want %v", got, want)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		a := NewArray([]string{"1", "2"})
		if err := a.AddIndexes(geom.Down, DefaultIndexBuff); err != nil {
			t.Fatalf("AddIndexes: %v", err)
		}
		if err := a.AddIndexes(geom.Up, 1.0); err != nil {
			t.Fatalf("second AddIndexes: %v", err)
		}
		if got, want := captions(a), []string{"0", "1"}; !equalStrings(got, want) {
			t.Fatalf("captions = %v, want %v", got, want)
		}
	})

	t.Run("parallel direction rejected", func(t *testing.T) {
		for _, dir := range []geom.Vec{geom.Right, geom.Left, geom.Right.Scale(2)} {
			a := NewArray([]string{"1"})
			err := a.AddIndexes(dir, DefaultIndexBuff)
			if errors.GetCode(err) != errors.ErrCodeInvalidDirection {
				t.Errorf("AddIndexes(%v) code = %v, want %v", dir, errors.GetCode(err), errors.ErrCodeInvalidDirection)
			}
		}
	})
}

func TestArrayAt(t *testing.T) {
	a := NewArray([]string{"1", "2"})
	if _, err := a.At(1); err != nil {
		t.Fatalf("At(1): %v", err)
	}
	for _, i := range []int{-1, 2} {
		_, err := a.At(i)
		if errors.GetCode(err) != errors.ErrCodeIndexOutOfRange {
			t.Errorf("At(%d) code = %v, want %v", i, errors.GetCode(err), errors.ErrCodeIndexOutOfRange)
		}
	}
}

func TestArraySwap(t *testing.T) {
	t.Run("involution", func(t *testing.T) {
		a := NewArray([]string{"1", "2", "3"})
		before := make([]geom.Vec, a.Len())
		for i, e := range a.Elements() {
			before[i] = e.Cell().Center()
		}

		if err := a.Swap(0, 2); err != nil {
			t.Fatalf("first swap: %v", err)
		}
		if got, want := a.Values(), []string{"3", "2", "1"}; !equalStrings(got, want) {
			t.Fatalf("after swap, values = %v, want %v", got, want)
		}
		if err := a.Swap(0, 2); err != nil {
			t.Fatalf("second swap: %v", err)
		}
		if got, want := a.Values(), []string{"1", "2", "3"}; !equalStrings(got, want) {
			t.Fatalf("after double swap, values = %v, want %v", got, want)
		}
		for i, e := range a.Elements() {
			if !vecNear(e.Cell().Center(), before[i], 1e-9) {
				t.Errorf("cell %d center = %v, want %v", i, e.Cell().Center(), before[i])
			}
		}
	})

	t.Run("captions stay with slots", func(t *testing.T) {
		a := NewArray([]string{"1", "2", "3"})
		if err := a.AddIndexes(geom.Down, DefaultIndexBuff); err != nil {
			t.Fatalf("AddIndexes: %v", err)
		}
		if err := a.Swap(0, 2); err != nil {
			t.Fatalf("swap: %v", err)
		}
		if got, want := captions(a), []string{"0", "1", "2"}; !equalStrings(got, want) {
			t.Errorf("captions = %v, want %v", got, want)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		a := NewArray([]string{"1"})
		err := a.Swap(0, 3)
		if errors.GetCode(err) != errors.ErrCodeIndexOutOfRange {
			t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeIndexOutOfRange)
		}
	})
}

func TestArrayPopAnimCleanup(t *testing.T) {
	t.Run("played timeline detaches the popped element", func(t *testing.T) {
		a := NewArray([]string{"1", "2", "3"})
		popped := a.Elements()[0]

		tl := a.PopAtAnim(0)
		if got, want := a.Values(), []string{"2", "3"}; !equalStrings(got, want) {
			t.Fatalf("values = %v, want %v", got, want)
		}
		if !a.Contains(popped) {
			t.Fatal("popped element should stay attached until the timeline finishes")
		}

		anim.NewPlayback(tl, 30).Run()
		if a.Contains(popped) {
			t.Error("popped element still attached after playback")
		}
		if a.Len() != a.AttachedElements() {
			t.Errorf("logical length %d != attached elements %d", a.Len(), a.AttachedElements())
		}
	})

	t.Run("discarded timeline cleans up on Finish", func(t *testing.T) {
		a := NewArray([]string{"1", "2"})
		popped := a.Elements()[1]

		tl := a.PopAnim()
		tl.Finish()
		if a.Contains(popped) {
			t.Error("popped element still attached after Finish")
		}
	})

	t.Run("empty array yields an empty timeline", func(t *testing.T) {
		a := NewArray(nil)
		tl := a.PopAnim()
		if len(tl.Animations()) != 0 {
			t.Errorf("got %d transitions, want 0", len(tl.Animations()))
		}
	})
}

func TestStackPushPop(t *testing.T) {
	s := NewStack([]string{"1", "2"})
	s.Push("3")
	if got, want := s.Values(), []string{"1", "2", "3"}; !equalStrings(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	if s.Peek().Value() != "3" {
		t.Errorf("Peek = %q, want %q", s.Peek().Value(), "3")
	}

	s.Pop()
	if got, want := s.Values(), []string{"1", "2"}; !equalStrings(got, want) {
		t.Fatalf("after pop, values = %v, want %v", got, want)
	}
	if s.Len() != s.AttachedElements() {
		t.Errorf("logical length %d != attached elements %d", s.Len(), s.AttachedElements())
	}

	// Elements are stacked bottom-up.
	lo := s.Elements()[0].Cell().Center()
	hi := s.Elements()[1].Cell().Center()
	if hi.Y <= lo.Y {
		t.Errorf("element 1 (y=%v) should sit above element 0 (y=%v)", hi.Y, lo.Y)
	}
}

func TestStackSpawnPoint(t *testing.T) {
	s := NewStack([]string{"1", "2"})

	top := s.Peek().Cell().Center()
	if s.SpawnPoint().Y <= top.Y {
		t.Fatalf("spawn point %v should sit above the top element %v", s.SpawnPoint(), top)
	}

	before := s.SpawnPoint()
	s.Scale(2)
	after := s.SpawnPoint()
	if vecNear(before, after, 1e-9) {
		t.Error("spawn point did not follow the scale transform")
	}

	// The derived relation survives the transform: one (scaled) cell
	// height above the container mouth.
	want := s.bottom.Center().
		Add(geom.Up.Scale(s.right.Length())).
		Add(geom.Up.Scale(s.hidden.Cell().H()))
	if !vecNear(after, want, 1e-9) {
		t.Errorf("spawn point = %v, want %v", after, want)
	}

	s.Shift(geom.Right.Scale(3))
	moved := s.SpawnPoint()
	if !vecNear(moved, after.Add(geom.Right.Scale(3)), 1e-6) {
		t.Errorf("spawn point after shift = %v, want %v", moved, after.Add(geom.Right.Scale(3)))
	}
}

func TestStackContainerFixed(t *testing.T) {
	s := NewStack(nil)
	wallH := s.right.Length()
	if wallH <= 0 {
		t.Fatal("container walls should have positive length")
	}
	spawn := s.SpawnPoint()

	// The container is decorative and sized once at construction: pushing
	// well past the initial capacity must not move the walls or the spawn
	// point.
	for i := 0; i < 10; i++ {
		s.Push(itoa(i))
	}
	if got := s.right.Length(); got != wallH {
		t.Errorf("wall length = %v after 10 pushes, want %v", got, wallH)
	}
	if got := s.SpawnPoint(); !vecNear(got, spawn, 1e-9) {
		t.Errorf("spawn point = %v after 10 pushes, want %v", got, spawn)
	}

	for i := 0; i < 10; i++ {
		s.Pop()
	}
	if got := s.right.Length(); got != wallH {
		t.Errorf("wall length = %v after draining, want %v", got, wallH)
	}

	// Larger initial contents size a taller container.
	big := NewStack([]string{"a", "b", "c", "d", "e", "f"})
	if big.right.Length() <= wallH {
		t.Errorf("wall length for 6 initial values = %v, want > empty-stack %v", big.right.Length(), wallH)
	}
}

func TestStackPushAnim(t *testing.T) {
	s := NewStack([]string{"1"})
	tl := s.PushAnim("2")
	if got, want := s.Values(), []string{"1", "2"}; !equalStrings(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}

	elem := s.Peek()
	spawn := s.SpawnPoint()
	if !vecNear(elem.Cell().Center(), spawn, 1e-9) {
		t.Fatalf("new element parked at %v, want spawn point %v", elem.Cell().Center(), spawn)
	}

	anim.NewPlayback(tl, 30).Run()
	base := s.Elements()[0].Cell().Center()
	want := base.Add(geom.Up.Scale(s.Style().Cell.Height))
	if !vecNear(elem.Cell().Center(), want, 1e-6) {
		t.Errorf("after playback, cell center = %v, want slot %v", elem.Cell().Center(), want)
	}
}

func TestStackPopAnim(t *testing.T) {
	s := NewStack([]string{"1", "2"})
	popped := s.Peek()

	tl := s.PopAnim()
	if got, want := s.Values(), []string{"1"}; !equalStrings(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	if !s.Contains(popped) {
		t.Fatal("popped element should stay attached until the timeline finishes")
	}

	anim.NewPlayback(tl, 30).Run()
	if s.Contains(popped) {
		t.Error("popped element still attached after playback")
	}

	tl = s.PopAnim()
	anim.NewPlayback(tl, 30).Run()
	if s.Len() != 0 {
		t.Errorf("length = %d, want 0", s.Len())
	}
	if len(s.PopAnim().Animations()) != 0 {
		t.Error("popping an empty stack should yield an empty timeline")
	}
}

func TestElementHighlight(t *testing.T) {
	e := NewElement(style.DefaultCollection().Cell, style.DefaultCollection().Value, "7")
	if e.Highlighted() {
		t.Fatal("fresh element should not be highlighted")
	}

	e.Highlight(style.DefaultHighlight())
	if !e.Highlighted() {
		t.Fatal("element should be highlighted")
	}

	e.Unhighlight()
	if e.Highlighted() {
		t.Fatal("element should not be highlighted after Unhighlight")
	}

	e.Highlight(style.Highlight{Stroke: style.GreenL, Width: 4})
	tl := e.UnhighlightAnim()
	anim.NewPlayback(tl, 30).Run()
	if e.Highlighted() {
		t.Error("element still highlighted after fade-out playback")
	}
}

func TestVariable(t *testing.T) {
	v := NewVariable("x", "10")
	if v.Value() != "10" {
		t.Fatalf("value = %q, want %q", v.Value(), "10")
	}
	if v.Name().Content() != "x =" {
		t.Errorf("name = %q, want %q", v.Name().Content(), "x =")
	}

	v.SetValue("11")
	if v.Value() != "11" {
		t.Errorf("value = %q, want %q", v.Value(), "11")
	}

	pos := v.Element().ValueText().Center()
	tl := v.SetValueAnim("12")
	anim.NewPlayback(tl, 30).Run()
	if v.Value() != "12" {
		t.Errorf("value = %q, want %q", v.Value(), "12")
	}
	if !vecNear(v.Element().ValueText().Center(), pos, 1e-6) {
		t.Errorf("value text drifted to %v, want %v", v.Element().ValueText().Center(), pos)
	}

	// The name label sits left of the cell by default.
	if v.Name().Center().X >= v.Element().Cell().Center().X {
		t.Error("name label should sit left of the cell")
	}
}

func TestCollectionLabel(t *testing.T) {
	a := NewArray([]string{"1", "2", "3"})
	a.AddLabel("arr", geom.Up, 0.5)
	if a.Label() == nil {
		t.Fatal("label not attached")
	}
	if a.Label().Center().Y <= a.Elements()[0].Cell().Center().Y {
		t.Error("label should sit above the cells")
	}

	s := NewStack([]string{"1"})
	s.AddLabel("st", geom.Left, 0.5)
	if s.Label() == nil {
		t.Fatal("stack label not attached")
	}
	if s.Label().Center().X >= s.bottom.Center().X {
		t.Error("stack label should sit left of the container")
	}
}
