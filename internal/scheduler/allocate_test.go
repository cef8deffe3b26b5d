package scheduler

import (
	"math"
	"testing"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_ProportionalSplit(t *testing.T) {
	subjects := []domain.Subject{
		{Name: "Math", Priority: 2},
		{Name: "History", Priority: 1},
	}

	alloc, err := Allocate(subjects, 90)

	require.NoError(t, err)
	assert.Equal(t, domain.Allocation{"Math": 60, "History": 30}, alloc)
}

func TestAllocate_RemainderGoesToLargestFraction(t *testing.T) {
	// Shares: A = 70*0.5 = 35, B = 70*0.3 = 21, C = 70*0.2 = 14. Exact.
	// With 71 minutes: 35.5 / 21.3 / 14.2 — the single leftover minute
	// belongs to A, which has the largest fractional remainder.
	subjects := []domain.Subject{
		{Name: "A", Priority: 5},
		{Name: "B", Priority: 3},
		{Name: "C", Priority: 2},
	}

	alloc, err := Allocate(subjects, 71)

	require.NoError(t, err)
	assert.Equal(t, domain.Allocation{"A": 36, "B": 21, "C": 14}, alloc)
	assert.Equal(t, 71, alloc.Total())
}

func TestAllocate_TieBreaksByInputOrder(t *testing.T) {
	// Three equal weights over 10 minutes: 3.33 each, one leftover minute.
	// All fractional remainders tie, so the first subject gets it.
	subjects := []domain.Subject{
		{Name: "Math", Priority: 1},
		{Name: "Python", Priority: 1},
		{Name: "AI", Priority: 1},
	}

	alloc, err := Allocate(subjects, 10)

	require.NoError(t, err)
	assert.Equal(t, domain.Allocation{"Math": 4, "Python": 3, "AI": 3}, alloc)
}

func TestAllocate_SingleSubjectGetsEverything(t *testing.T) {
	alloc, err := Allocate([]domain.Subject{{Name: "Math", Priority: 0.5}}, 137)

	require.NoError(t, err)
	assert.Equal(t, domain.Allocation{"Math": 137}, alloc)
}

func TestAllocate_FractionalWeights(t *testing.T) {
	subjects := []domain.Subject{
		{Name: "Math", Priority: 1.5},
		{Name: "History", Priority: 0.5},
	}

	alloc, err := Allocate(subjects, 60)

	require.NoError(t, err)
	assert.Equal(t, domain.Allocation{"Math": 45, "History": 15}, alloc)
}

func TestAllocate_InvalidInput(t *testing.T) {
	valid := []domain.Subject{{Name: "Math", Priority: 1}}

	tests := []struct {
		name     string
		subjects []domain.Subject
		total    int
	}{
		{"empty subjects", nil, 60},
		{"zero total", valid, 0},
		{"negative total", valid, -30},
		{"zero priority", []domain.Subject{{Name: "Math", Priority: 0}}, 60},
		{"negative priority", []domain.Subject{{Name: "Math", Priority: -2}}, 60},
		{"NaN priority", []domain.Subject{
			{Name: "Math", Priority: math.NaN()},
			{Name: "History", Priority: 1},
		}, 90},
		{"positive infinite priority", []domain.Subject{{Name: "Math", Priority: math.Inf(1)}}, 60},
		{"negative infinite priority", []domain.Subject{
			{Name: "Math", Priority: math.Inf(-1)},
			{Name: "History", Priority: 1},
		}, 60},
		{"empty name", []domain.Subject{{Name: "", Priority: 1}}, 60},
		{"duplicate name", []domain.Subject{
			{Name: "Math", Priority: 1},
			{Name: "Math", Priority: 2},
		}, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			alloc, err := Allocate(tc.subjects, tc.total)

			assert.Nil(t, alloc)
			var planErr *contract.PlanError
			require.ErrorAs(t, err, &planErr)
			assert.Equal(t, contract.ErrInvalidInput, planErr.Code)
		})
	}
}

func TestAllocate_TotalSmallerThanSubjectCount(t *testing.T) {
	// 2 minutes across 3 subjects: someone legitimately gets zero.
	subjects := []domain.Subject{
		{Name: "A", Priority: 1},
		{Name: "B", Priority: 1},
		{Name: "C", Priority: 1},
	}

	alloc, err := Allocate(subjects, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, alloc.Total())
	assert.Equal(t, domain.Allocation{"A": 1, "B": 1, "C": 0}, alloc)
}
