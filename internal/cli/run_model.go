package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/akarlsen/pomoplan/internal/cli/formatter"
	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg fires once per second while a segment is counting down.
type tickMsg time.Time

// runKeyMap holds the key bindings for the timer view.
type runKeyMap struct {
	Pause key.Binding
	Skip  key.Binding
	Quit  key.Binding
}

func defaultRunKeyMap() runKeyMap {
	return runKeyMap{
		Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
		Skip:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next segment")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// runModel counts down through a plan's segments one at a time.
type runModel struct {
	segments  []domain.Segment
	idx       int
	remaining time.Duration
	paused    bool
	done      bool
	bar       progress.Model
	keys      runKeyMap
}

func newRunModel(segments []domain.Segment) *runModel {
	bar := progress.New(progress.WithSolidFill("#8ec07c"))
	m := &runModel{
		segments: segments,
		bar:      bar,
		keys:     defaultRunKeyMap(),
	}
	if len(segments) > 0 {
		m.remaining = segmentDuration(segments[0])
	} else {
		m.done = true
	}
	return m
}

func segmentDuration(seg domain.Segment) time.Duration {
	return time.Duration(seg.Minutes) * time.Minute
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *runModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return tick()
}

func (m *runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			return m, nil
		case key.Matches(msg, m.keys.Skip):
			return m.advance()
		}
		return m, nil

	case tickMsg:
		if m.done {
			return m, tea.Quit
		}
		if m.paused {
			return m, tick()
		}
		m.remaining -= time.Second
		if m.remaining <= 0 {
			return m.advance()
		}
		return m, tick()

	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil
	}

	return m, nil
}

// advance moves to the next segment, quitting once the plan is exhausted.
func (m *runModel) advance() (tea.Model, tea.Cmd) {
	m.idx++
	if m.idx >= len(m.segments) {
		m.done = true
		return m, tea.Quit
	}
	m.remaining = segmentDuration(m.segments[m.idx])
	return m, tick()
}

func (m *runModel) View() string {
	if m.done {
		return formatter.StyleGreen.Render("Session complete.") + "\n"
	}

	seg := m.segments[m.idx]
	total := segmentDuration(seg)
	elapsed := total - m.remaining
	pct := 0.0
	if total > 0 {
		pct = float64(elapsed) / float64(total)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		formatter.SegmentBadge(seg.Kind),
		formatter.Bold(formatter.SegmentLabel(seg)),
	))
	b.WriteString(fmt.Sprintf("%s remaining\n\n", formatCountdown(m.remaining)))
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteString("\n\n")

	status := formatter.Dim(fmt.Sprintf("segment %d of %d", m.idx+1, len(m.segments)))
	if m.paused {
		status = formatter.StyleYellow.Render("PAUSED") + "  " + status
	}
	b.WriteString(status + "\n")
	b.WriteString(formatter.Dim("space pause · n next · q quit") + "\n")

	return formatter.RenderBox("Pomodoro", b.String())
}

// formatCountdown renders a duration as MM:SS, or H:MM:SS past an hour.
func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
