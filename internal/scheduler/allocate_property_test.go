package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocate_Invariants_SumAlwaysExact property-tests the core allocation
// invariant: the allocated minutes sum to the requested total exactly, with
// no value below zero, regardless of weight distribution.
func TestAllocate_Invariants_SumAlwaysExact(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		totalMinutes := rng.Intn(600) + 1 // 1–600 min
		numSubjects := rng.Intn(9) + 1    // 1–9 subjects

		subjects := make([]domain.Subject, numSubjects)
		for i := range subjects {
			subjects[i] = domain.Subject{
				Name:     fmt.Sprintf("subject-%d", i),
				Priority: rng.Float64()*9.9 + 0.1, // 0.1–10.0
			}
		}

		alloc, err := Allocate(subjects, totalMinutes)
		require.NoError(t, err, "trial %d", trial)

		assert.Equal(t, totalMinutes, alloc.Total(),
			"trial %d: allocation must sum to total (%d)", trial, totalMinutes)
		for name, min := range alloc {
			assert.GreaterOrEqual(t, min, 0,
				"trial %d: subject %s allocation must be >= 0", trial, name)
		}
		assert.Len(t, alloc, numSubjects,
			"trial %d: every subject must appear in the allocation", trial)
	}
}

// TestAllocate_Invariants_Deterministic verifies that identical input yields
// an identical allocation, including when fractional remainders tie.
func TestAllocate_Invariants_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		totalMinutes := rng.Intn(300) + 1
		numSubjects := rng.Intn(6) + 1

		subjects := make([]domain.Subject, numSubjects)
		for i := range subjects {
			subjects[i] = domain.Subject{
				Name:     fmt.Sprintf("s%d", i),
				Priority: float64(rng.Intn(5) + 1), // small ints force ties
			}
		}

		first, err := Allocate(subjects, totalMinutes)
		require.NoError(t, err)
		second, err := Allocate(subjects, totalMinutes)
		require.NoError(t, err)

		assert.Equal(t, first, second, "trial %d: allocation must be deterministic", trial)
	}
}

// TestAllocate_Invariants_NearProportional checks each subject lands within
// one minute of its exact proportional share — the most any subject can gain
// or lose under largest-remainder rounding.
func TestAllocate_Invariants_NearProportional(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 200; trial++ {
		totalMinutes := rng.Intn(480) + 1
		numSubjects := rng.Intn(7) + 1

		subjects := make([]domain.Subject, numSubjects)
		weightSum := 0.0
		for i := range subjects {
			subjects[i] = domain.Subject{
				Name:     fmt.Sprintf("s%d", i),
				Priority: rng.Float64()*4 + 0.25,
			}
			weightSum += subjects[i].Priority
		}

		alloc, err := Allocate(subjects, totalMinutes)
		require.NoError(t, err)

		for _, s := range subjects {
			exact := s.Priority / weightSum * float64(totalMinutes)
			got := float64(alloc[s.Name])
			assert.InDelta(t, exact, got, 1.0,
				"trial %d: subject %s allocation %v too far from exact share %v",
				trial, s.Name, got, exact)
		}
	}
}
