package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Clock formats a time as a 24h wall-clock label.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// ClockRange formats a start/end pair as "09:00–09:25".
func ClockRange(start, end time.Time) string {
	return fmt.Sprintf("%s–%s", Clock(start), Clock(end))
}

// SegmentLabel returns the display label for a segment: the subject name
// for study segments, a break label otherwise.
func SegmentLabel(seg domain.Segment) string {
	switch seg.Kind {
	case domain.SegmentStudy:
		return seg.Subject
	case domain.SegmentLongBreak:
		return "Long break"
	default:
		return "Break"
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
