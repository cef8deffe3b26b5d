package domain

type SegmentKind string

const (
	SegmentStudy      SegmentKind = "study"
	SegmentShortBreak SegmentKind = "short_break"
	SegmentLongBreak  SegmentKind = "long_break"
)

// Segment is one contiguous timed block of the final schedule. Subject is
// set only for study segments. Segments are produced once and never mutated.
type Segment struct {
	Kind    SegmentKind
	Subject string
	Minutes int
}

// IsBreak reports whether the segment is a short or long break.
func (s Segment) IsBreak() bool {
	return s.Kind == SegmentShortBreak || s.Kind == SegmentLongBreak
}
