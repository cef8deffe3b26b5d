package testutil

import "github.com/akarlsen/pomoplan/internal/domain"

// ExampleSubjects returns a three-subject weighted list shared across
// tests: Math 3, Python 2, AI 4.
func ExampleSubjects() []domain.Subject {
	return []domain.Subject{
		{Name: "Math", Priority: 3},
		{Name: "Python", Priority: 2},
		{Name: "AI", Priority: 4},
	}
}
