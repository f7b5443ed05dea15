package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/style"
)

// DefaultPixelsPerUnit converts scene units to pixels: eight scene units
// of frame height become 640 pixels.
const DefaultPixelsPerUnit = 80.0

// Style stroke widths are percentages of a scene unit.
const strokeUnitsPerWidth = 0.01

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	ppu        float64
	background style.Color
}

// WithPixelsPerUnit sets the scene-unit to pixel conversion.
func WithPixelsPerUnit(ppu float64) SVGOption {
	return func(r *svgRenderer) { r.ppu = ppu }
}

// WithBackground overrides the scene's background color.
func WithBackground(c style.Color) SVGOption {
	return func(r *svgRenderer) { r.background = c }
}

// RenderSVG renders the scene's current state as a standalone SVG
// document. Primitives are emitted in draw order (ascending z, ties in
// tree order); the y axis is flipped from the scene's y-up convention to
// SVG's y-down one.
func RenderSVG(sc *scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{ppu: DefaultPixelsPerUnit, background: sc.Background}
	for _, opt := range opts {
		opt(&r)
	}

	w := sc.Frame.W * r.ppu
	h := sc.Frame.H * r.ppu
	px := func(p geom.Vec) (float64, float64) {
		return (p.X + sc.Frame.XRadius()) * r.ppu, (sc.Frame.YRadius() - p.Y) * r.ppu
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", string(r.background))

	for _, obj := range scene.Flatten(sc.Root) {
		if obj.Opacity() <= 0 {
			continue
		}
		switch o := obj.(type) {
		case *scene.Rect:
			r.renderRect(&buf, o, px)
		case *scene.Circle:
			r.renderCircle(&buf, o, px)
		case *scene.Line:
			r.renderLine(&buf, o, px)
		case *scene.Arc:
			r.renderArc(&buf, o, px)
		case *scene.Text:
			r.renderText(&buf, o, px)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

type project func(geom.Vec) (float64, float64)

func (r *svgRenderer) renderRect(buf *bytes.Buffer, o *scene.Rect, px project) {
	min := o.Bounds().Min()
	x, y := px(geom.Vec{X: min.X, Y: min.Y + o.H()})
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" %s/>`+"\n",
		x, y, o.W()*r.ppu, o.H()*r.ppu, r.shapeAttrs(o.Style, o.Opacity()))
}

func (r *svgRenderer) renderCircle(buf *bytes.Buffer, o *scene.Circle, px project) {
	x, y := px(o.Center())
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" %s/>`+"\n",
		x, y, o.Radius()*r.ppu, r.shapeAttrs(o.Style, o.Opacity()))
}

func (r *svgRenderer) renderLine(buf *bytes.Buffer, o *scene.Line, px project) {
	x1, y1 := px(o.Start())
	x2, y2 := px(o.End())
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s/>`+"\n",
		x1, y1, x2, y2, r.strokeAttrs(o.Style, o.Opacity()))
	if o.HasTip() {
		r.renderTip(buf, o.End(), o.UnitVector(), o.TipLength(), o.Style, o.Opacity(), px)
	}
}

func (r *svgRenderer) renderArc(buf *bytes.Buffer, o *scene.Arc, px project) {
	chord := o.End().Sub(o.Start()).Len()
	if chord == 0 || o.Angle() == 0 {
		x1, y1 := px(o.Start())
		x2, y2 := px(o.End())
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s/>`+"\n",
			x1, y1, x2, y2, r.strokeAttrs(o.Style, o.Opacity()))
		return
	}

	radius := chord / (2 * math.Sin(math.Abs(o.Angle())/2))
	// Positive angles sweep counterclockwise; SVG's sweep flag 1 means
	// clockwise.
	sweep := 0
	if o.Angle() < 0 {
		sweep = 1
	}
	large := 0
	if math.Abs(o.Angle()) > math.Pi {
		large = 1
	}
	x1, y1 := px(o.Start())
	x2, y2 := px(o.End())
	fmt.Fprintf(buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 %d %d %.2f %.2f" fill="none" %s/>`+"\n",
		x1, y1, radius*r.ppu, radius*r.ppu, large, sweep, x2, y2, r.strokeAttrs(o.Style, o.Opacity()))
	if o.HasTip() {
		// Tangent at the end point: the chord direction rotated by half
		// the subtended angle.
		dir := o.End().Sub(o.Start()).Unit().Rotate(o.Angle() / 2)
		r.renderTip(buf, o.End(), dir, o.TipLength(), o.Style, o.Opacity(), px)
	}
}

func (r *svgRenderer) renderTip(buf *bytes.Buffer, at, dir geom.Vec, length float64, s style.Shape, opacity float64, px project) {
	back := at.Sub(dir.Scale(length))
	side := dir.Orthogonal().Scale(length / 2)
	p1x, p1y := px(at)
	p2x, p2y := px(back.Add(side))
	p3x, p3y := px(back.Sub(side))
	fmt.Fprintf(buf, `  <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
		p1x, p1y, p2x, p2y, p3x, p3y, string(s.Stroke), opacity)
}

func (r *svgRenderer) renderText(buf *bytes.Buffer, o *scene.Text, px project) {
	x, y := px(o.Center())
	weight := "normal"
	if o.Style.Bold {
		weight = "bold"
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" font-weight="%s" fill="%s" fill-opacity="%.2f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		x, y, o.Style.Font, r.fontPx(o), weight, string(o.Style.Color), o.Opacity(), escapeText(o.Content()))
}

// fontPx converts the text's effective font size to pixels, matching the
// height heuristic the scene uses for layout.
func (r *svgRenderer) fontPx(o *scene.Text) float64 {
	return o.FontSize() / 96.0 * r.ppu
}

func (r *svgRenderer) shapeAttrs(s style.Shape, opacity float64) string {
	fill := "none"
	fillOpacity := 0.0
	if s.Fill != "" {
		fill = string(s.Fill)
		fillOpacity = s.FillOpacity * opacity
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.2f" %s`, fill, fillOpacity, r.strokeAttrs(s, opacity))
}

func (r *svgRenderer) strokeAttrs(s style.Shape, opacity float64) string {
	if s.Stroke == "" {
		return `stroke="none"`
	}
	return fmt.Sprintf(`stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f"`,
		string(s.Stroke), s.StrokeWidth*strokeUnitsPerWidth*r.ppu, opacity)
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, c := range s {
		switch c {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String()
}
