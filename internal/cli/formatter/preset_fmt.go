package formatter

import (
	"fmt"
	"strings"

	"github.com/akarlsen/pomoplan/internal/domain"
)

// FormatPresetList renders saved presets as a table.
func FormatPresetList(presets []*domain.SubjectPreset) string {
	if len(presets) == 0 {
		return Dim("No presets saved. Use 'pomoplan preset save' to create one.") + "\n"
	}

	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		names := make([]string, 0, len(p.Subjects))
		for _, s := range p.Subjects {
			names = append(names, s.Name)
		}
		rows = append(rows, []string{
			StyleFg.Render(p.Name),
			Dim(strings.Join(names, ", ")),
			TruncID(p.ID),
		})
	}
	return RenderTable([]string{"Name", "Subjects", "ID"}, rows)
}

// FormatPreset renders a single preset with its subject weights.
func FormatPreset(p *domain.SubjectPreset) string {
	var b strings.Builder

	total := 0.0
	for _, s := range p.Subjects {
		total += s.Priority
	}

	rows := make([][]string, 0, len(p.Subjects))
	for _, s := range p.Subjects {
		share := 0.0
		if total > 0 {
			share = s.Priority / total
		}
		rows = append(rows, []string{
			StyleFg.Render(s.Name),
			fmt.Sprintf("%g", s.Priority),
			ShareBar(share, 10),
		})
	}

	b.WriteString(RenderTable([]string{"Subject", "Weight", "Share"}, rows))
	return RenderBox(p.Name, b.String())
}
