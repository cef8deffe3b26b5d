package formatter

import (
	"fmt"
	"strings"

	"github.com/akarlsen/pomoplan/internal/domain"
)

// FormatCadence renders the pomodoro cadence settings.
func FormatCadence(cfg domain.PomodoroConfig) string {
	var b strings.Builder

	rows := [][]string{
		{Dim("work"), FormatMinutes(cfg.WorkMin)},
		{Dim("short-break"), FormatMinutes(cfg.ShortBreakMin)},
		{Dim("long-break"), FormatMinutes(cfg.LongBreakMin)},
		{Dim("cycles"), fmt.Sprintf("%d", cfg.CyclesBeforeLongBreak)},
	}
	b.WriteString(RenderTable([]string{"Setting", "Value"}, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Long break after every %d full work blocks.", cfg.CyclesBeforeLongBreak)))

	return RenderBox("Pomodoro Cadence", b.String())
}
