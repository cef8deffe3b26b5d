package formatter

import (
	"fmt"
	"strings"

	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SegmentStyle returns the lipgloss style for a segment kind.
func SegmentStyle(kind domain.SegmentKind) lipgloss.Style {
	switch kind {
	case domain.SegmentStudy:
		return StyleGreen
	case domain.SegmentShortBreak:
		return StyleBlue
	case domain.SegmentLongBreak:
		return StylePurple
	default:
		return StyleDim
	}
}

// SegmentBadge returns a colored indicator string such as "● STUDY".
func SegmentBadge(kind domain.SegmentKind) string {
	switch kind {
	case domain.SegmentStudy:
		return StyleGreen.Render("● STUDY")
	case domain.SegmentShortBreak:
		return StyleBlue.Render("○ BREAK")
	case domain.SegmentLongBreak:
		return StylePurple.Render("◎ LONG BREAK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
