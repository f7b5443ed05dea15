package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/vizlab/dsanim/pkg/geom"
)

// Spring tuning for move transitions. Critically damped: elements settle
// into their slot without overshoot.
const (
	springFrequency = 7.0
	springDamping   = 1.0
)

// Playback steps a timeline frame by frame, mutating the target objects'
// visual state (position, opacity, scale) toward each transition's
// endpoint. The final frame of every transition snaps exactly to the end
// state, so a finished playback leaves the scene identical to the state
// the mutating call already produced.
type Playback struct {
	timeline *Timeline
	fps      int
	frame    int
	current  int // index into timeline.anims
	inFrame  int // frames elapsed within the current transition

	spring    harmonica.Spring
	sx, sy    float64 // spring position
	vx, vy    float64 // spring velocity
	lastScale float64
}

// NewPlayback prepares a playback of tl at the given frame rate.
func NewPlayback(tl *Timeline, fps int) *Playback {
	if fps <= 0 {
		fps = 30
	}
	p := &Playback{
		timeline:  tl,
		fps:       fps,
		spring:    harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		lastScale: 1,
	}
	p.enter()
	return p
}

// FPS returns the playback frame rate.
func (p *Playback) FPS() int { return p.fps }

// Frame returns the number of frames stepped so far.
func (p *Playback) Frame() int { return p.frame }

// Done reports whether the timeline has fully played.
func (p *Playback) Done() bool {
	return p.current >= len(p.timeline.anims)
}

// Progress returns overall progress in [0, 1].
func (p *Playback) Progress() float64 {
	total := p.totalFrames()
	if total == 0 {
		return 1
	}
	return math.Min(1, float64(p.frame)/float64(total))
}

func (p *Playback) totalFrames() int {
	n := 0
	for _, a := range p.timeline.anims {
		n += p.frames(a)
	}
	return n
}

func (p *Playback) frames(a Animation) int {
	n := int(a.Duration.Seconds() * float64(p.fps))
	if n < 1 {
		n = 1
	}
	return n
}

// enter initializes per-transition state when a new transition starts.
func (p *Playback) enter() {
	if p.Done() {
		return
	}
	a := p.timeline.anims[p.current]
	p.inFrame = 0
	p.lastScale = 1
	switch a.Op {
	case OpMove:
		a.Target.MoveTo(a.From)
		p.sx, p.sy = a.From.X, a.From.Y
		p.vx, p.vy = 0, 0
	case OpCreate, OpWrite:
		a.Target.SetOpacity(0)
	}
}

// Step advances one frame, applying the interpolated visual state.
// It returns false once the timeline has fully played.
func (p *Playback) Step() bool {
	if p.Done() {
		return false
	}
	a := p.timeline.anims[p.current]
	total := p.frames(a)
	p.inFrame++
	p.frame++
	t := float64(p.inFrame) / float64(total)

	switch a.Op {
	case OpMove:
		p.sx, p.vx = p.spring.Update(p.sx, p.vx, a.To.X)
		p.sy, p.vy = p.spring.Update(p.sy, p.vy, a.To.Y)
		a.Target.MoveTo(geom.Vec{X: p.sx, Y: p.sy})
	case OpCreate, OpWrite:
		a.Target.SetOpacity(t)
	case OpFadeOut:
		a.Target.SetOpacity(1 - t)
	case OpIndicate:
		s := 1 + 0.2*math.Sin(math.Pi*t)
		a.Target.ScaleBy(s/p.lastScale, a.Target.Center())
		p.lastScale = s
	}

	if p.inFrame >= total {
		p.finish(a)
		p.current++
		p.enter()
		if p.Done() {
			p.timeline.Finish()
		}
	}
	return !p.Done()
}

// finish snaps the transition to its exact end state.
func (p *Playback) finish(a Animation) {
	switch a.Op {
	case OpMove:
		a.Target.MoveTo(a.To)
	case OpCreate, OpWrite:
		a.Target.SetOpacity(1)
	case OpFadeOut:
		a.Target.SetOpacity(0)
	case OpIndicate:
		if p.lastScale != 0 {
			a.Target.ScaleBy(1/p.lastScale, a.Target.Center())
		}
	}
}

// Run plays the whole timeline to completion without pacing. Useful in
// tests and for frame dumps where wall-clock time is irrelevant.
func (p *Playback) Run() {
	for p.Step() {
	}
}

// FrameDuration returns the wall-clock length of one frame.
func (p *Playback) FrameDuration() time.Duration {
	return time.Second / time.Duration(p.fps)
}
