package service

import (
	"context"
	"errors"
	"time"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/akarlsen/pomoplan/internal/quotes"
	"github.com/akarlsen/pomoplan/internal/repository"
	"github.com/akarlsen/pomoplan/internal/scheduler"
	"github.com/google/uuid"
)

type planService struct {
	profiles repository.ProfileRepo
	picker   *quotes.Picker
	now      func() time.Time
}

// NewPlanService creates a PlanService. The profile repo supplies the
// stored pomodoro defaults for requests that don't override the cadence;
// it may be nil, in which case the built-in defaults apply. A nil picker
// produces plans without a quote.
func NewPlanService(profiles repository.ProfileRepo, picker *quotes.Picker) PlanService {
	return &planService{profiles: profiles, picker: picker, now: time.Now}
}

func (s *planService) BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	cfg, err := s.resolveCadence(ctx, req.Pomodoro)
	if err != nil {
		return nil, err
	}

	alloc, err := scheduler.Allocate(req.Subjects, req.TotalMinutes)
	if err != nil {
		return nil, err
	}

	order := make([]string, len(req.Subjects))
	for i, sub := range req.Subjects {
		order[i] = sub.Name
	}

	segments, err := scheduler.BuildSchedule(alloc, order, cfg)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()
	start := generatedAt.Truncate(time.Minute)
	if req.StartTime != nil {
		start = req.StartTime.Truncate(time.Minute)
	}

	resp := &contract.PlanResponse{
		ID:           uuid.New().String(),
		GeneratedAt:  generatedAt,
		TotalMinutes: req.TotalMinutes,
		Allocation:   alloc,
		Order:        order,
		Segments:     segments,
		Timeline:     stampTimeline(segments, start),
	}
	if s.picker != nil {
		resp.Quote = s.picker.Pick()
	}
	return resp, nil
}

// resolveCadence returns the request's pomodoro config, falling back to
// the stored profile and then to the built-in defaults when the request
// leaves it zero-valued.
func (s *planService) resolveCadence(ctx context.Context, cfg domain.PomodoroConfig) (domain.PomodoroConfig, error) {
	if cfg != (domain.PomodoroConfig{}) {
		return cfg, nil
	}
	if s.profiles != nil {
		p, err := s.profiles.Get(ctx)
		if err == nil {
			return p.Pomodoro(), nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return domain.PomodoroConfig{}, err
		}
	}
	return domain.DefaultPomodoroConfig(), nil
}

// stampTimeline assigns wall-clock start/end times to each segment,
// back to back from the given start.
func stampTimeline(segments []domain.Segment, start time.Time) []contract.TimedSegment {
	timeline := make([]contract.TimedSegment, 0, len(segments))
	cur := start
	for _, seg := range segments {
		end := cur.Add(time.Duration(seg.Minutes) * time.Minute)
		timeline = append(timeline, contract.TimedSegment{Start: cur, End: end, Segment: seg})
		cur = end
	}
	return timeline
}
