package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
)

// Format names a still-image output format.
type Format string

// The supported formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", errors.New(errors.ErrCodeUnknownFormat, "unknown output format %q (supported: svg, png)", s)
	}
}

// Still renders the scene's current state in the given format.
func Still(sc *scene.Scene, f Format) ([]byte, error) {
	switch f {
	case FormatSVG:
		return RenderSVG(sc), nil
	case FormatPNG:
		return RenderPNG(sc)
	default:
		return nil, errors.New(errors.ErrCodeUnknownFormat, "unknown output format %q", string(f))
	}
}

// Frames plays the timeline and rasterizes every frame to PNG. The first
// entry shows the staged pre-transition state; the last one shows the
// settled end state.
func Frames(sc *scene.Scene, tl *anim.Timeline, fps int, opts ...PNGOption) ([][]byte, error) {
	p := anim.NewPlayback(tl, fps)

	var frames [][]byte
	for {
		img, err := RenderPNG(sc, opts...)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
		if !p.Step() {
			break
		}
	}
	return frames, nil
}

// WriteFrames renders the timeline into dir as zero-padded PNG files
// (frame-0000.png, frame-0001.png, ...), creating the directory if
// needed.
func WriteFrames(dir string, sc *scene.Scene, tl *anim.Timeline, fps int, opts ...PNGOption) (int, error) {
	frames, err := Frames(sc, tl, fps, opts...)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "create frame directory")
	}
	for i, img := range frames {
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		if err := os.WriteFile(name, img, 0o644); err != nil {
			return i, errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
		}
	}
	return len(frames), nil
}
