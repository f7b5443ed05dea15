// Package player opens a desktop window and plays animation timelines
// against a live scene. Each tick advances the active playback by one
// frame and redraws the scene from scratch, so the window always shows
// the same state a frame dump at the same instant would.
package player

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vizlab/dsanim/pkg/buildinfo"
	"github.com/vizlab/dsanim/pkg/render"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
)

// Run opens the playback window and blocks until it closes. Timelines
// play in order; once the last one finishes the window stays open on the
// settled scene until the user quits with q or escape. Space pauses.
func Run(sc *scene.Scene, timelines []*anim.Timeline, fps int, title string) error {
	if fps <= 0 {
		fps = 30
	}
	g := &game{sc: sc, timelines: timelines, fps: fps}
	g.width = int(sc.Frame.W * render.DefaultPixelsPerUnit)
	g.height = int(sc.Frame.H * render.DefaultPixelsPerUnit)
	g.enter()

	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(fps)
	return ebiten.RunGame(g)
}

type game struct {
	sc        *scene.Scene
	timelines []*anim.Timeline
	fps       int

	width, height int
	idx           int
	playback      *anim.Playback
	paused        bool

	img     *image.RGBA
	frame   *ebiten.Image
	drawErr error
}

// enter starts the playback for the current timeline, if any remain.
func (g *game) enter() {
	if g.idx < len(g.timelines) {
		g.playback = anim.NewPlayback(g.timelines[g.idx], g.fps)
	} else {
		g.playback = nil
	}
}

func (g *game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if g.paused || g.playback == nil {
		return nil
	}
	if !g.playback.Step() {
		g.idx++
		g.enter()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	src, err := render.Raster(g.sc)
	if err != nil {
		// Surface the error through Update; Draw cannot return one.
		g.drawErr = err
		return
	}

	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.width, g.height))
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	if rgba, ok := src.(*image.RGBA); ok {
		copy(g.img.Pix, rgba.Pix)
	} else {
		draw.Draw(g.img, g.img.Bounds(), src, image.Point{}, draw.Src)
	}

	g.frame.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
