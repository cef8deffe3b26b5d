package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/akarlsen/pomoplan/internal/quotes"
	"github.com/akarlsen/pomoplan/internal/repository"
	"github.com/akarlsen/pomoplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanService(t *testing.T) (PlanService, repository.ProfileRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLiteProfileRepo(database)

	catalog, err := quotes.Load()
	require.NoError(t, err)
	picker := quotes.NewPicker(catalog, rand.New(rand.NewSource(1)))

	return NewPlanService(profiles, picker), profiles
}

func TestPlanService_BuildPlanEndToEnd(t *testing.T) {
	svc, _ := newTestPlanService(t)

	req := contract.NewPlanRequest([]domain.Subject{
		{Name: "Math", Priority: 2},
		{Name: "History", Priority: 1},
	}, 90)

	resp, err := svc.BuildPlan(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.Allocation{"Math": 60, "History": 30}, resp.Allocation)
	assert.Equal(t, []string{"Math", "History"}, resp.Order)
	assert.NotEmpty(t, resp.Quote)

	studyTotal := 0
	for _, seg := range resp.Segments {
		if seg.Kind == domain.SegmentStudy {
			studyTotal += seg.Minutes
		}
	}
	assert.Equal(t, 90, studyTotal)
}

func TestPlanService_TimelineIsContiguous(t *testing.T) {
	svc, _ := newTestPlanService(t)

	start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	req := contract.NewPlanRequest([]domain.Subject{{Name: "Math", Priority: 1}}, 60)
	req.StartTime = &start

	resp, err := svc.BuildPlan(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Timeline, len(resp.Segments))

	first := resp.Timeline[0]
	assert.Equal(t, start, first.Start)
	assert.Equal(t, start.Add(25*time.Minute), first.End)

	for i := 1; i < len(resp.Timeline); i++ {
		assert.Equal(t, resp.Timeline[i-1].End, resp.Timeline[i].Start,
			"segment %d must start where the previous one ends", i)
	}
	last := resp.Timeline[len(resp.Timeline)-1]
	assert.Equal(t, start.Add(70*time.Minute), last.End, "60 study + 2 short breaks")
}

func TestPlanService_UsesStoredCadenceWhenRequestOmitsIt(t *testing.T) {
	svc, profiles := newTestPlanService(t)
	ctx := context.Background()

	require.NoError(t, profiles.Upsert(ctx, &domain.UserProfile{
		ID:                    "default",
		WorkMin:               50,
		ShortBreakMin:         10,
		LongBreakMin:          20,
		CyclesBeforeLongBreak: 3,
	}))

	req := contract.PlanRequest{
		Subjects:     []domain.Subject{{Name: "AI", Priority: 1}},
		TotalMinutes: 120,
	}

	resp, err := svc.BuildPlan(ctx, req)

	require.NoError(t, err)
	require.NotEmpty(t, resp.Segments)
	assert.Equal(t, 50, resp.Segments[0].Minutes, "stored work length applies")
	assert.Equal(t, 10, resp.Segments[1].Minutes, "stored short break applies")
}

func TestPlanService_RequestCadenceOverridesProfile(t *testing.T) {
	svc, _ := newTestPlanService(t)

	req := contract.PlanRequest{
		Subjects:     []domain.Subject{{Name: "AI", Priority: 1}},
		TotalMinutes: 60,
		Pomodoro: domain.PomodoroConfig{
			WorkMin:               45,
			ShortBreakMin:         10,
			LongBreakMin:          20,
			CyclesBeforeLongBreak: 3,
		},
	}

	resp, err := svc.BuildPlan(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 45, resp.Segments[0].Minutes)
}

func TestPlanService_InvalidInputSurfacesVerbatim(t *testing.T) {
	svc, _ := newTestPlanService(t)

	_, err := svc.BuildPlan(context.Background(), contract.NewPlanRequest(nil, 60))

	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.ErrInvalidInput, planErr.Code)
}

func TestPlanService_WorksWithoutProfileOrPicker(t *testing.T) {
	svc := NewPlanService(nil, nil)

	resp, err := svc.BuildPlan(context.Background(),
		contract.NewPlanRequest(testutil.ExampleSubjects(), 180))

	require.NoError(t, err)
	assert.Empty(t, resp.Quote)
	assert.Equal(t, 180, resp.Allocation.Total())
}
