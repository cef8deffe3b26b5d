package contract

import (
	"time"

	"github.com/akarlsen/pomoplan/internal/domain"
)

// PlanRequest carries the validated inputs for one scheduling request.
// Subjects keep their input order; that order is the tie-break for
// remainder minutes and the emission order of the schedule.
type PlanRequest struct {
	Subjects     []domain.Subject
	TotalMinutes int
	Pomodoro     domain.PomodoroConfig
	StartTime    *time.Time
}

// NewPlanRequest creates a PlanRequest with the default pomodoro cadence.
func NewPlanRequest(subjects []domain.Subject, totalMinutes int) PlanRequest {
	return PlanRequest{
		Subjects:     subjects,
		TotalMinutes: totalMinutes,
		Pomodoro:     domain.DefaultPomodoroConfig(),
	}
}

// TimedSegment is a schedule segment stamped with wall-clock start and end.
type TimedSegment struct {
	Start   time.Time
	End     time.Time
	Segment domain.Segment
}

// PlanResponse is the complete output of one scheduling request.
// Either the whole plan is produced or the request fails; no partials.
type PlanResponse struct {
	ID           string
	GeneratedAt  time.Time
	TotalMinutes int
	Allocation   domain.Allocation
	Order        []string
	Segments     []domain.Segment
	Timeline     []TimedSegment
	Quote        string
}

type PlanErrorCode string

const (
	// ErrInvalidInput covers empty subject lists, non-positive priorities
	// or totals, duplicate subject names, and malformed pomodoro configs.
	ErrInvalidInput PlanErrorCode = "INVALID_INPUT"
	// ErrMissingAllocation means the blocker was asked to schedule a
	// subject absent from the allocation — a contract violation between
	// allocator and blocker, always fatal to the request.
	ErrMissingAllocation PlanErrorCode = "MISSING_ALLOCATION"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// InvalidInput builds a PlanError with the INVALID_INPUT code.
func InvalidInput(msg string) *PlanError {
	return &PlanError{Code: ErrInvalidInput, Message: msg}
}

// MissingAllocation builds a PlanError with the MISSING_ALLOCATION code.
func MissingAllocation(msg string) *PlanError {
	return &PlanError{Code: ErrMissingAllocation, Message: msg}
}
