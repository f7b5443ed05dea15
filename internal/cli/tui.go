package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/scene/anim"
)

// scrubberModel is the terminal fallback for 'play' when no window can be
// opened: it steps the timelines at the requested rate and shows playback
// progress, leaving the scene in the same settled state the window would.
type scrubberModel struct {
	name      string
	sc        *scene.Scene
	timelines []*anim.Timeline
	fps       int

	idx      int
	playback *anim.Playback
	paused   bool
	done     bool
}

type tickMsg time.Time

func newScrubber(name string, sc *scene.Scene, timelines []*anim.Timeline, fps int) *scrubberModel {
	m := &scrubberModel{name: name, sc: sc, timelines: timelines, fps: fps}
	m.enter()
	return m
}

func (m *scrubberModel) enter() {
	if m.idx < len(m.timelines) {
		m.playback = anim.NewPlayback(m.timelines[m.idx], m.fps)
	} else {
		m.playback = nil
		m.done = true
	}
}

func (m *scrubberModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *scrubberModel) Init() tea.Cmd {
	return m.tick()
}

func (m *scrubberModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
	case tickMsg:
		if m.done {
			return m, tea.Quit
		}
		if !m.paused && m.playback != nil && !m.playback.Step() {
			m.idx++
			m.enter()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *scrubberModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("dsanim · "+m.name) + "\n\n")

	total := len(m.timelines)
	current := m.idx
	if current > total {
		current = total
	}
	b.WriteString(fmt.Sprintf("  step %s · %s\n",
		StyleHighlight.Render(fmt.Sprintf("%d/%d", min(current+1, total), total)),
		StyleDim.Render(fmt.Sprintf("%d objects", m.visibleObjects()))))
	b.WriteString("  " + progressBar(m.progress(), 40) + "\n\n")

	if m.paused {
		b.WriteString(StyleWarning.Render("  paused") + "\n")
	}
	b.WriteString(StyleDim.Render("  space pause · q quit") + "\n")
	return b.String()
}

// visibleObjects counts the scene leaves currently drawn, so the view
// reflects elements fading in and out as the timelines play.
func (m *scrubberModel) visibleObjects() int {
	n := 0
	for _, obj := range scene.Flatten(m.sc.Root) {
		if obj.Opacity() > 0 {
			n++
		}
	}
	return n
}

// progress returns overall playback progress in [0, 1].
func (m *scrubberModel) progress() float64 {
	if len(m.timelines) == 0 || m.done {
		return 1
	}
	p := float64(m.idx)
	if m.playback != nil {
		p += m.playback.Progress()
	}
	return p / float64(len(m.timelines))
}

// progressBar renders a fixed-width bar of filled and empty cells.
func progressBar(p float64, width int) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	filled := int(p * float64(width))
	return StyleHighlight.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled))
}

// runScrubber plays the timelines in the terminal.
func runScrubber(name string, sc *scene.Scene, timelines []*anim.Timeline, fps int) error {
	_, err := tea.NewProgram(newScrubber(name, sc, timelines, fps)).Run()
	return err
}
