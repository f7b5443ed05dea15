package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/geom"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/style"
	"github.com/vizlab/dsanim/pkg/widget"
	"github.com/vizlab/dsanim/pkg/widget/graph"
)

func arrayScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc := scene.New()
	a := widget.NewArray([]string{"1", "2", "3"})
	sc.Root.Attach(a)
	return sc
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(arrayScene(t)))

	if !strings.HasPrefix(svg, "<svg ") {
		t.Fatalf("output does not start with an svg tag: %.60s", svg)
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Fatal("output is not closed")
	}
	for _, want := range []string{"<rect", ">1</text>", ">2</text>", ">3</text>", string(style.White)} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Three visible cells; the hidden layout template must not render.
	if got := strings.Count(svg, "<rect"); got != 4 { // 3 cells + background
		t.Errorf("rect count = %d, want 4", got)
	}
}

func TestRenderSVGDrawOrder(t *testing.T) {
	svg := string(RenderSVG(arrayScene(t)))

	// Values draw above their cells.
	lastRect := strings.LastIndex(svg, "<rect")
	firstText := strings.Index(svg, "<text")
	if firstText < lastRect {
		t.Error("text rendered under a cell")
	}
}

func TestRenderSVGTip(t *testing.T) {
	sc := scene.New()
	g := graph.New(graph.WithDirected())
	if _, err := g.AddNode("A", geom.Vec{X: -2, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("B", geom.Vec{X: 2, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("A", "B"); err != nil {
		t.Fatal(err)
	}
	sc.Root.Attach(g)

	svg := string(RenderSVG(sc))
	if !strings.Contains(svg, "<polygon") {
		t.Error("directed edge should render an arrowhead polygon")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("nodes should render circles")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	sc := arrayScene(t)
	svg := string(RenderSVG(sc, WithPixelsPerUnit(10), WithBackground(style.Color("#123456"))))

	if !strings.Contains(svg, `width="142"`) {
		t.Errorf("pixels-per-unit override not applied: %.120s", svg)
	}
	if !strings.Contains(svg, "#123456") {
		t.Error("background override not applied")
	}
}

func TestRenderPNGShapes(t *testing.T) {
	sc := scene.New()

	box := scene.NewRect(style.Shape{Fill: style.White, FillOpacity: 1, Width: 4, Height: 4})
	sc.Root.Attach(box)

	ring := scene.NewCircle(style.Shape{Stroke: style.White, StrokeWidth: 40, Radius: 2})
	ring.MoveTo(geom.Vec{X: 5, Y: 0})
	sc.Root.Attach(ring)

	data, err := RenderPNG(sc, WithPNGPixelsPerUnit(10))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	luma := func(x, y int) uint32 {
		r, g, b, _ := img.At(x, y).RGBA()
		return (r + g + b) / 3
	}

	// Center of the filled rectangle.
	if l := luma(71, 40); l < 0xf000 {
		t.Errorf("rect center luma = %#x, want near white", l)
	}
	// Background outside every shape.
	if l := luma(1, 1); l > 0x0fff {
		t.Errorf("background luma = %#x, want near black", l)
	}
	// The circle has no fill: its center stays background-dark.
	if l := luma(121, 40); l > 0x0fff {
		t.Errorf("circle interior luma = %#x, want near black", l)
	}
	// Its stroke ring is painted.
	if l := luma(141, 40); l < 0x8000 {
		t.Errorf("circle stroke luma = %#x, want painted", l)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "svg", want: FormatSVG},
		{in: "PNG", want: FormatPNG},
		{in: "gif", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if errors.GetCode(err) != errors.ErrCodeUnknownFormat {
				t.Errorf("ParseFormat(%q) code = %v, want %v", tt.in, errors.GetCode(err), errors.ErrCodeUnknownFormat)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestToDOT(t *testing.T) {
	t.Run("directed with weights", func(t *testing.T) {
		g := graph.New(graph.WithDirected())
		for _, n := range []string{"A", "B", "C"} {
			if _, err := g.AddNode(n, geom.Zero); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := g.AddEdge("A", "B", graph.WithWeight("3")); err != nil {
			t.Fatal(err)
		}
		if _, err := g.AddEdge("B", "C"); err != nil {
			t.Fatal(err)
		}

		dot := ToDOT(g)
		for _, want := range []string{"digraph G {", `"A" -> "B" [label="3"];`, `"B" -> "C";`} {
			if !strings.Contains(dot, want) {
				t.Errorf("DOT missing %q:\n%s", want, dot)
			}
		}
	})

	t.Run("undirected collapses pairs", func(t *testing.T) {
		g := graph.New()
		for _, n := range []string{"A", "B"} {
			if _, err := g.AddNode(n, geom.Zero); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := g.AddEdge("A", "B"); err != nil {
			t.Fatal(err)
		}
		if _, err := g.AddEdge("B", "A"); err != nil {
			t.Fatal(err)
		}

		dot := ToDOT(g)
		if !strings.Contains(dot, "graph G {") || strings.Contains(dot, "digraph") {
			t.Errorf("expected undirected graph header:\n%s", dot)
		}
		if got := strings.Count(dot, `"A" -- "B"`)+strings.Count(dot, `"B" -- "A"`); got != 1 {
			t.Errorf("edge statements = %d, want 1:\n%s", got, dot)
		}
	})
}
