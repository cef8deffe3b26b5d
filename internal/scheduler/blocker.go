package scheduler

import (
	"fmt"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
)

// BuildSchedule expands each subject's minute budget into an ordered
// sequence of study and break segments. Subjects are emitted in the given
// order; within a subject, full work-length study blocks are carved off
// until fewer than WorkMin minutes remain, and any remainder becomes one
// shorter study block so the subject's study minutes sum exactly to its
// allocation.
//
// A break follows every full-length study block except the last segment of
// the whole schedule. The cycle counter deciding short vs. long breaks runs
// across the entire schedule, not per subject.
func BuildSchedule(alloc domain.Allocation, order []string, cfg domain.PomodoroConfig) ([]domain.Segment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, contract.InvalidInput(err.Error())
	}
	for _, name := range order {
		minutes, ok := alloc[name]
		if !ok {
			return nil, contract.MissingAllocation(fmt.Sprintf("subject %q has no allocation", name))
		}
		if minutes < 0 {
			return nil, contract.InvalidInput(fmt.Sprintf("subject %q has negative allocation %d", name, minutes))
		}
	}

	var segments []domain.Segment
	var pending *domain.Segment // break earned by the previous full block
	cycles := 0

	for _, name := range order {
		remaining := alloc[name]
		for remaining > 0 {
			if pending != nil {
				segments = append(segments, *pending)
				pending = nil
			}
			study := cfg.WorkMin
			if remaining < study {
				study = remaining
			}
			segments = append(segments, domain.Segment{
				Kind:    domain.SegmentStudy,
				Subject: name,
				Minutes: study,
			})
			remaining -= study
			if study == cfg.WorkMin {
				cycles++
				pending = breakAfter(cycles, cfg)
			}
		}
	}

	// A pending break earned by the final block is dropped: the schedule
	// never ends on a break.
	return segments, nil
}

func breakAfter(cycles int, cfg domain.PomodoroConfig) *domain.Segment {
	if cycles%cfg.CyclesBeforeLongBreak == 0 {
		return &domain.Segment{Kind: domain.SegmentLongBreak, Minutes: cfg.LongBreakMin}
	}
	return &domain.Segment{Kind: domain.SegmentShortBreak, Minutes: cfg.ShortBreakMin}
}
