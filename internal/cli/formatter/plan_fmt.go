package formatter

import (
	"fmt"
	"strings"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
)

// FormatPlan formats a PlanResponse into a styled CLI dashboard string.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Allocation (%s total)", FormatMinutes(resp.TotalMinutes))))
	b.WriteString("\n\n")
	b.WriteString(formatAllocation(resp))
	b.WriteString("\n")

	b.WriteString(Header("Schedule"))
	b.WriteString("\n\n")
	b.WriteString(formatSchedule(resp))

	study, rest := splitDurations(resp.Segments)
	b.WriteString("\n")
	summaryLine := fmt.Sprintf(
		"%s  %s  %s  %s  %s",
		StyleGreen.Render(fmt.Sprintf("Study: %s", FormatMinutes(study))),
		StyleDim.Render("|"),
		StyleBlue.Render(fmt.Sprintf("Breaks: %s", FormatMinutes(rest))),
		StyleDim.Render("|"),
		StyleFg.Render(fmt.Sprintf("Session: %s", FormatMinutes(study+rest))),
	)
	b.WriteString(summaryLine + "\n")

	if resp.Quote != "" {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("“%s”", resp.Quote)) + "\n")
	}

	return RenderBox("Study Plan", b.String())
}

// formatAllocation renders a subject/time/share table in allocation order.
func formatAllocation(resp *contract.PlanResponse) string {
	rows := make([][]string, 0, len(resp.Order))
	for _, name := range resp.Order {
		minutes := resp.Allocation[name]
		share := 0.0
		if resp.TotalMinutes > 0 {
			share = float64(minutes) / float64(resp.TotalMinutes)
		}
		rows = append(rows, []string{
			StyleFg.Render(name),
			FormatMinutes(minutes),
			ShareBar(share, 10),
		})
	}
	return RenderTable([]string{"Subject", "Time", "Share"}, rows)
}

// formatSchedule renders the segment sequence, with wall-clock times when
// the response carries a timeline.
func formatSchedule(resp *contract.PlanResponse) string {
	if len(resp.Segments) == 0 {
		return Dim("Nothing scheduled.") + "\n"
	}

	if len(resp.Timeline) == len(resp.Segments) {
		rows := make([][]string, 0, len(resp.Timeline))
		for _, ts := range resp.Timeline {
			rows = append(rows, []string{
				Dim(ClockRange(ts.Start, ts.End)),
				SegmentStyle(ts.Segment.Kind).Render(SegmentLabel(ts.Segment)),
				FormatMinutes(ts.Segment.Minutes),
			})
		}
		return RenderTable([]string{"Time", "Activity", "Length"}, rows)
	}

	rows := make([][]string, 0, len(resp.Segments))
	for i, seg := range resp.Segments {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			SegmentStyle(seg.Kind).Render(SegmentLabel(seg)),
			FormatMinutes(seg.Minutes),
		})
	}
	return RenderTable([]string{"#", "Activity", "Length"}, rows)
}

func splitDurations(segments []domain.Segment) (study, rest int) {
	for _, seg := range segments {
		if seg.Kind == domain.SegmentStudy {
			study += seg.Minutes
		} else {
			rest += seg.Minutes
		}
	}
	return study, rest
}
