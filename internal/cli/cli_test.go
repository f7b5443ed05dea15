package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/layout"
	"github.com/vizlab/dsanim/pkg/scene/anim"
)

func TestLayoutLines(t *testing.T) {
	lines := layoutLines()
	if len(lines) != len(layout.All()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(layout.All()))
	}

	var defaults int
	for _, line := range lines {
		if strings.HasSuffix(line, "(default)") {
			defaults++
			if !strings.HasPrefix(line, string(layout.Default)) {
				t.Errorf("default marker on %q, want %s", line, layout.Default)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("default marked %d times, want once", defaults)
	}
}

func TestBuildScript(t *testing.T) {
	for _, name := range scriptNames() {
		t.Run(name, func(t *testing.T) {
			sc, timelines, err := buildScript(name)
			if err != nil {
				t.Fatalf("buildScript(%q): %v", name, err)
			}
			if sc == nil || sc.Root.Len() == 0 {
				t.Fatal("script produced an empty scene")
			}
			if len(timelines) == 0 {
				t.Fatal("script produced no timelines")
			}

			// Every timeline must play through cleanly.
			for i, tl := range timelines {
				if len(tl.Animations()) == 0 {
					t.Errorf("timeline %d is empty", i)
				}
				anim.NewPlayback(tl, 30).Run()
			}
		})
	}
}

func TestBuildScriptUnknown(t *testing.T) {
	_, _, err := buildScript("matrix")
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.DebugLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("attached logger not returned")
	}
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("bare context should fall back to the default logger")
	}

	loggerFromContext(ctx).Debug("ping")
	if !strings.Contains(buf.String(), "ping") {
		t.Errorf("debug output missing: %q", buf.String())
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		opts renderOpts
		ext  string
		want string
	}{
		{name: "derived from input", opts: renderOpts{input: "graph.json"}, ext: "svg", want: "graph.svg"},
		{name: "explicit output wins", opts: renderOpts{input: "graph.json", output: "out/pic.png"}, ext: "png", want: "out/pic.png"},
		{name: "input without extension", opts: renderOpts{input: "graph"}, ext: "dot", want: "graph.dot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(&tt.opts, tt.ext); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScrubberProgress(t *testing.T) {
	sc, timelines, err := buildScript("stack")
	if err != nil {
		t.Fatal(err)
	}

	m := newScrubber("stack", sc, timelines, 30)
	if p := m.progress(); p != 0 {
		t.Errorf("initial progress = %v, want 0", p)
	}

	for !m.done {
		if m.playback != nil && !m.playback.Step() {
			m.idx++
			m.enter()
		}
	}
	if p := m.progress(); p != 1 {
		t.Errorf("final progress = %v, want 1", p)
	}
	if !strings.Contains(m.View(), "stack") {
		t.Error("view should name the script")
	}
	if !strings.Contains(m.View(), "objects") {
		t.Error("view should summarize the scene contents")
	}
	if m.visibleObjects() <= 0 {
		t.Error("settled scene should have visible objects")
	}
}
