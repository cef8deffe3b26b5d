package domain

// Subject is one entry in a scheduling request: a name and its relative
// priority weight. Higher weight means a larger share of the total time.
// Subjects are immutable for the duration of one request.
type Subject struct {
	Name     string
	Priority float64
}

// Allocation maps a subject name to its allocated whole minutes.
type Allocation map[string]int

// Total returns the sum of all allocated minutes.
func (a Allocation) Total() int {
	total := 0
	for _, min := range a {
		total += min
	}
	return total
}
