package domain

import "time"

// SubjectPreset is a named, reusable list of subjects and weights, so a
// recurring plan ("exams", "weekday evenings") doesn't have to be retyped.
type SubjectPreset struct {
	ID        string
	Name      string
	Subjects  []Subject
	CreatedAt time.Time
	UpdatedAt time.Time
}
