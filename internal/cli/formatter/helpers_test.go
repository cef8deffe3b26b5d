package formatter

import (
	"testing"
	"time"

	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{125, "2h 5m"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatMinutes(tc.min))
	}
}

func TestClockRange(t *testing.T) {
	start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)

	assert.Equal(t, "09:00–09:25", ClockRange(start, end))
}

func TestSegmentLabel(t *testing.T) {
	assert.Equal(t, "Math", SegmentLabel(domain.Segment{Kind: domain.SegmentStudy, Subject: "Math", Minutes: 25}))
	assert.Equal(t, "Break", SegmentLabel(domain.Segment{Kind: domain.SegmentShortBreak, Minutes: 5}))
	assert.Equal(t, "Long break", SegmentLabel(domain.Segment{Kind: domain.SegmentLongBreak, Minutes: 15}))
}

func TestRenderBox_IncludesTitleAndContent(t *testing.T) {
	out := stripANSI(RenderBox("Study Plan", "hello"))

	assert.Contains(t, out, "STUDY PLAN")
	assert.Contains(t, out, "hello")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"Subject", "Time"},
		[][]string{
			{"Math", "1h"},
			{"History", "30m"},
		},
	))

	assert.Contains(t, out, "Subject")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "History  30m")
}

func TestShareBar_ClampsAndScales(t *testing.T) {
	assert.Contains(t, stripANSI(ShareBar(0.5, 10)), " 50%")
	assert.Contains(t, stripANSI(ShareBar(-1, 10)), "  0%")
	assert.Contains(t, stripANSI(ShareBar(2, 10)), "100%")
	assert.Contains(t, stripANSI(ShareBar(1, 4)), "████")
}
