// Package anim describes visual transitions over scene objects.
//
// Widgets apply their logical mutation immediately and return an animation
// describing the visual transition from the pre-mutation to the
// post-mutation state. Playing the animation is optional: the scene is
// already consistent after the mutating call, and a Playback merely
// interpolates the visuals between the recorded endpoints.
//
// Sequential composition uses Succession, mirroring how the host engine
// chains staged transitions (create at spawn point, then slide into the
// slot). Move transitions are eased with a damped spring
// (charmbracelet/harmonica); fades and indications use linear ramps.
package anim

import (
	"time"

	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
)

// Op identifies the kind of a transition.
type Op int

const (
	// OpCreate draws the object in by ramping opacity from zero.
	OpCreate Op = iota
	// OpWrite is a create variant used for text-bearing elements.
	OpWrite
	// OpFadeOut ramps the object's opacity to zero.
	OpFadeOut
	// OpMove slides the object from one position to another.
	OpMove
	// OpIndicate pulses the object's scale to draw attention.
	OpIndicate
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpFadeOut:
		return "fade-out"
	case OpMove:
		return "move"
	case OpIndicate:
		return "indicate"
	default:
		return "unknown"
	}
}

// DefaultDuration is the length of a single transition unless overridden.
const DefaultDuration = time.Second

// Animation is a single transition on one scene object.
type Animation struct {
	Op       Op
	Target   scene.Object
	From, To geom.Vec // move endpoints (OpMove only)
	Duration time.Duration
}

// Create returns a transition that draws obj in.
func Create(obj scene.Object) Animation {
	return Animation{Op: OpCreate, Target: obj, Duration: DefaultDuration}
}

// Write returns a transition that writes obj in.
func Write(obj scene.Object) Animation {
	return Animation{Op: OpWrite, Target: obj, Duration: DefaultDuration}
}

// FadeOut returns a transition that fades obj out.
func FadeOut(obj scene.Object) Animation {
	return Animation{Op: OpFadeOut, Target: obj, Duration: DefaultDuration}
}

// Move returns a transition sliding obj from its current center to.
func Move(obj scene.Object, to geom.Vec) Animation {
	return Animation{Op: OpMove, Target: obj, From: obj.Center(), To: to, Duration: DefaultDuration}
}

// MoveBetween returns a transition sliding obj between two explicit points.
func MoveBetween(obj scene.Object, from, to geom.Vec) Animation {
	return Animation{Op: OpMove, Target: obj, From: from, To: to, Duration: DefaultDuration}
}

// Indicate returns a transition pulsing obj's scale.
func Indicate(obj scene.Object) Animation {
	return Animation{Op: OpIndicate, Target: obj, Duration: DefaultDuration}
}

// WithDuration returns a copy of a with the duration replaced.
func (a Animation) WithDuration(d time.Duration) Animation {
	a.Duration = d
	return a
}

// Timeline is a sequential composition of transitions.
type Timeline struct {
	anims    []Animation
	onFinish []func()
}

// Succession chains transitions to play one after another.
func Succession(anims ...Animation) *Timeline {
	return &Timeline{anims: anims}
}

// Then appends more transitions to the timeline.
func (t *Timeline) Then(anims ...Animation) *Timeline {
	t.anims = append(t.anims, anims...)
	return t
}

// Animations returns the transitions in play order.
func (t *Timeline) Animations() []Animation { return t.anims }

// OnFinish registers a hook to run when the timeline completes. Widgets
// use this to detach departing visuals once their exit transition has
// played, so skipping playback never leaves remnants (the non-animated
// mutation detaches immediately instead).
func (t *Timeline) OnFinish(fn func()) *Timeline {
	t.onFinish = append(t.onFinish, fn)
	return t
}

// Finish runs the registered completion hooks. Playback calls it when the
// last frame has been stepped; callers that discard a timeline without
// playing it call Finish directly to apply the deferred cleanup.
func (t *Timeline) Finish() {
	for _, fn := range t.onFinish {
		fn()
	}
	t.onFinish = nil
}

// Duration returns the total play time.
func (t *Timeline) Duration() time.Duration {
	var d time.Duration
	for _, a := range t.anims {
		d += a.Duration
	}
	return d
}
