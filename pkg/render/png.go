package render

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"strconv"
	"sync"

	findfont "github.com/flopp/go-findfont"
	"github.com/fogleman/gg"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/style"
)

// PNGOption configures PNG rasterization.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	ppu        float64
	background style.Color
	fontPath   string
}

// WithPNGPixelsPerUnit sets the scene-unit to pixel conversion.
func WithPNGPixelsPerUnit(ppu float64) PNGOption {
	return func(r *pngRenderer) { r.ppu = ppu }
}

// WithPNGBackground overrides the scene's background color.
func WithPNGBackground(c style.Color) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// WithFontPath uses the TTF at path for text instead of searching the
// system fonts.
func WithFontPath(path string) PNGOption {
	return func(r *pngRenderer) { r.fontPath = path }
}

// RenderPNG rasterizes the scene's current state to a PNG image.
func RenderPNG(sc *scene.Scene, opts ...PNGOption) ([]byte, error) {
	dc, err := rasterContext(sc, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Raster draws the scene into an in-memory image. The player uploads
// these straight to the window without a PNG round trip.
func Raster(sc *scene.Scene, opts ...PNGOption) (image.Image, error) {
	dc, err := rasterContext(sc, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func rasterContext(sc *scene.Scene, opts []PNGOption) (*gg.Context, error) {
	r := pngRenderer{ppu: DefaultPixelsPerUnit, background: sc.Background}
	for _, opt := range opts {
		opt(&r)
	}

	w := int(sc.Frame.W * r.ppu)
	h := int(sc.Frame.H * r.ppu)
	dc := gg.NewContext(w, h)

	dc.SetColor(parseColor(r.background, 1))
	dc.Clear()

	px := func(p geom.Vec) (float64, float64) {
		return (p.X + sc.Frame.XRadius()) * r.ppu, (sc.Frame.YRadius() - p.Y) * r.ppu
	}

	for _, obj := range scene.Flatten(sc.Root) {
		if obj.Opacity() <= 0 {
			continue
		}
		switch o := obj.(type) {
		case *scene.Rect:
			r.drawRect(dc, o, px)
		case *scene.Circle:
			r.drawCircle(dc, o, px)
		case *scene.Line:
			r.drawLine(dc, o, px)
		case *scene.Arc:
			r.drawArc(dc, o, px)
		case *scene.Text:
			if err := r.drawText(dc, o, px); err != nil {
				return nil, err
			}
		}
	}
	return dc, nil
}

func (r *pngRenderer) strokePx(s style.Shape) float64 {
	return s.StrokeWidth * strokeUnitsPerWidth * r.ppu
}

// paintShape fills and strokes the current path the way the SVG sink's
// shape attributes do: fill only when set, stroke only when set.
func (r *pngRenderer) paintShape(dc *gg.Context, s style.Shape, opacity float64) {
	if s.Fill != "" {
		dc.SetColor(parseColor(s.Fill, s.FillOpacity*opacity))
		dc.FillPreserve()
	}
	if s.Stroke == "" {
		dc.ClearPath()
		return
	}
	dc.SetColor(parseColor(s.Stroke, opacity))
	dc.SetLineWidth(r.strokePx(s))
	dc.Stroke()
}

func (r *pngRenderer) drawRect(dc *gg.Context, o *scene.Rect, px project) {
	min := o.Bounds().Min()
	x, y := px(geom.Vec{X: min.X, Y: min.Y + o.H()})
	dc.DrawRectangle(x, y, o.W()*r.ppu, o.H()*r.ppu)
	r.paintShape(dc, o.Style, o.Opacity())
}

func (r *pngRenderer) drawCircle(dc *gg.Context, o *scene.Circle, px project) {
	x, y := px(o.Center())
	dc.DrawCircle(x, y, o.Radius()*r.ppu)
	r.paintShape(dc, o.Style, o.Opacity())
}

func (r *pngRenderer) drawLine(dc *gg.Context, o *scene.Line, px project) {
	x1, y1 := px(o.Start())
	x2, y2 := px(o.End())
	dc.DrawLine(x1, y1, x2, y2)
	dc.SetColor(parseColor(o.Style.Stroke, o.Opacity()))
	dc.SetLineWidth(r.strokePx(o.Style))
	dc.Stroke()

	if o.HasTip() {
		r.drawTip(dc, o.End(), o.UnitVector(), o.TipLength(), o.Style, o.Opacity(), px)
	}
}

func (r *pngRenderer) drawArc(dc *gg.Context, o *scene.Arc, px project) {
	start, end, angle := o.Start(), o.End(), o.Angle()
	chord := end.Sub(start)
	if chord.Len() == 0 || angle == 0 {
		x1, y1 := px(start)
		x2, y2 := px(end)
		dc.DrawLine(x1, y1, x2, y2)
		dc.SetColor(parseColor(o.Style.Stroke, o.Opacity()))
		dc.SetLineWidth(r.strokePx(o.Style))
		dc.Stroke()
		return
	}

	// Recover the arc's circle: the center sits on the chord's
	// perpendicular bisector, opposite the bow.
	radius := chord.Len() / (2 * math.Sin(math.Abs(angle)/2))
	mid := start.Lerp(end, 0.5)
	center := mid.Sub(chord.Unit().Orthogonal().Scale(math.Copysign(radius*math.Cos(angle/2), angle)))

	a1 := start.Sub(center).Angle()
	cx, cy := px(center)
	// gg angles are y-down; scene angles are y-up, so both flip sign.
	dc.DrawArc(cx, cy, radius*r.ppu, -a1, -(a1 + angle))
	dc.SetColor(parseColor(o.Style.Stroke, o.Opacity()))
	dc.SetLineWidth(r.strokePx(o.Style))
	dc.Stroke()

	if o.HasTip() {
		dir := chord.Unit().Rotate(angle / 2)
		r.drawTip(dc, end, dir, o.TipLength(), o.Style, o.Opacity(), px)
	}
}

func (r *pngRenderer) drawTip(dc *gg.Context, at, dir geom.Vec, length float64, s style.Shape, opacity float64, px project) {
	back := at.Sub(dir.Scale(length))
	side := dir.Orthogonal().Scale(length / 2)
	x1, y1 := px(at)
	x2, y2 := px(back.Add(side))
	x3, y3 := px(back.Sub(side))
	dc.MoveTo(x1, y1)
	dc.LineTo(x2, y2)
	dc.LineTo(x3, y3)
	dc.ClosePath()
	dc.SetColor(parseColor(s.Stroke, opacity))
	dc.Fill()
}

func (r *pngRenderer) drawText(dc *gg.Context, o *scene.Text, px project) error {
	path, err := r.resolveFont()
	if err != nil {
		return err
	}
	size := o.FontSize() / 96.0 * r.ppu
	if err := dc.LoadFontFace(path, size); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "load font %s", path)
	}
	x, y := px(o.Center())
	dc.SetColor(parseColor(o.Style.Color, o.Opacity()))
	dc.DrawStringAnchored(o.Content(), x, y, 0.5, 0.5)
	return nil
}

var fontOnce struct {
	sync.Once
	path string
	err  error
}

// resolveFont finds a usable TTF once per process. Any monospace face is
// fine; text extents are driven by the scene's own heuristics.
func (r *pngRenderer) resolveFont() (string, error) {
	if r.fontPath != "" {
		return r.fontPath, nil
	}
	fontOnce.Do(func() {
		for _, name := range []string{"CascadiaCode", "DejaVuSansMono", "LiberationMono", "Courier", "Arial"} {
			if p, err := findfont.Find(name + ".ttf"); err == nil {
				fontOnce.path = p
				return
			}
		}
		fontOnce.err = errors.New(errors.ErrCodeInternal, "no usable TTF font found; set one with WithFontPath")
	})
	return fontOnce.path, fontOnce.err
}

// parseColor converts a hex color to an RGBA value with the given alpha.
func parseColor(c style.Color, alpha float64) color.Color {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{A: uint8(255 * clamp01(alpha))}
	}
	rv, _ := strconv.ParseUint(s[1:3], 16, 8)
	gv, _ := strconv.ParseUint(s[3:5], 16, 8)
	bv, _ := strconv.ParseUint(s[5:7], 16, 8)
	return color.NRGBA{R: uint8(rv), G: uint8(gv), B: uint8(bv), A: uint8(255 * clamp01(alpha))}
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
