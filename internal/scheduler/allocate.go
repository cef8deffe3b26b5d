package scheduler

import (
	"fmt"
	"math"
	"sort"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
)

// Allocate distributes totalMinutes across subjects proportionally to their
// priority weights. Each raw share is floored to whole minutes, then the
// leftover minutes are handed out one at a time to the subjects with the
// largest fractional remainder, ties broken by input order. The returned
// allocation always sums to totalMinutes exactly.
func Allocate(subjects []domain.Subject, totalMinutes int) (domain.Allocation, error) {
	if len(subjects) == 0 {
		return nil, contract.InvalidInput("subject list is empty")
	}
	if totalMinutes <= 0 {
		return nil, contract.InvalidInput(fmt.Sprintf("total minutes must be positive, got %d", totalMinutes))
	}

	seen := make(map[string]bool, len(subjects))
	weightSum := 0.0
	for _, s := range subjects {
		if s.Name == "" {
			return nil, contract.InvalidInput("subject name is empty")
		}
		if seen[s.Name] {
			return nil, contract.InvalidInput(fmt.Sprintf("duplicate subject %q", s.Name))
		}
		seen[s.Name] = true
		if math.IsNaN(s.Priority) || math.IsInf(s.Priority, 0) {
			return nil, contract.InvalidInput(fmt.Sprintf("subject %q has non-finite priority %g", s.Name, s.Priority))
		}
		if s.Priority <= 0 {
			return nil, contract.InvalidInput(fmt.Sprintf("subject %q has non-positive priority %g", s.Name, s.Priority))
		}
		weightSum += s.Priority
	}

	alloc := make(domain.Allocation, len(subjects))
	remainders := make([]float64, len(subjects))
	assigned := 0
	for i, s := range subjects {
		raw := s.Priority / weightSum * float64(totalMinutes)
		whole := int(math.Floor(raw))
		alloc[s.Name] = whole
		remainders[i] = raw - float64(whole)
		assigned += whole
	}

	// Largest-remainder distribution of the minutes lost to flooring.
	// SliceStable keeps input order for equal remainders.
	order := make([]int, len(subjects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for i := 0; i < totalMinutes-assigned; i++ {
		alloc[subjects[order[i%len(order)]].Name]++
	}

	return alloc, nil
}
