package scene

import (
	"sort"

	"github.com/vizlab/dsanim/pkg/style"
)

// Default frame dimensions in scene units, matching a 16:9 canvas eight
// units tall centered on the origin.
const (
	DefaultFrameW = 14.22
	DefaultFrameH = 8.0
)

// Frame describes the visible canvas. Layout algorithms rescale node
// positions into the frame's half-extents.
type Frame struct {
	W, H float64
}

// DefaultFrame returns the stock 16:9 frame.
func DefaultFrame() Frame { return Frame{W: DefaultFrameW, H: DefaultFrameH} }

// XRadius returns the frame's half width.
func (f Frame) XRadius() float64 { return f.W / 2 }

// YRadius returns the frame's half height.
func (f Frame) YRadius() float64 { return f.H / 2 }

// Scene is the root of the visible tree: a frame, a background color, and
// a root group that widgets attach to.
type Scene struct {
	Frame      Frame
	Background style.Color
	Root       *Group
}

// New creates an empty scene with the default frame and a black background.
func New() *Scene {
	return &Scene{
		Frame:      DefaultFrame(),
		Background: style.Color("#000000"),
		Root:       NewGroup(),
	}
}

// Flatten returns every leaf primitive reachable from root in draw order:
// ascending z-index, ties broken by tree order. Sinks and the player
// iterate this list to draw a frame.
func Flatten(root *Group) []Object {
	var leaves []Object
	var walk func(g *Group)
	walk = func(g *Group) {
		for _, c := range g.Children() {
			if sub, ok := c.(*Group); ok {
				walk(sub)
				continue
			}
			leaves = append(leaves, c)
		}
	}
	walk(root)
	sort.SliceStable(leaves, func(i, j int) bool { return leaves[i].Z() < leaves[j].Z() })
	return leaves
}
