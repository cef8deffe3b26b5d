package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akarlsen/pomoplan/internal/domain"
)

// parseSubjects parses a comma-separated subject list such as
// "Math:2,History:1". The weight is optional and defaults to 1.
func parseSubjects(spec string) ([]domain.Subject, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("subject list is empty")
	}

	parts := strings.Split(spec, ",")
	subjects := make([]domain.Subject, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty subject entry in %q", spec)
		}

		name := part
		weight := 1.0
		if idx := strings.LastIndex(part, ":"); idx >= 0 {
			name = strings.TrimSpace(part[:idx])
			w, err := strconv.ParseFloat(strings.TrimSpace(part[idx+1:]), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid weight in %q: use NAME:WEIGHT", part)
			}
			weight = w
		}
		if name == "" {
			return nil, fmt.Errorf("missing subject name in %q", part)
		}
		subjects = append(subjects, domain.Subject{Name: name, Priority: weight})
	}
	return subjects, nil
}

// parseClock parses a HH:MM wall-clock time and anchors it on today's date
// in the local timezone.
func parseClock(spec string) (time.Time, error) {
	parsed, err := time.Parse("15:04", spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: use HH:MM", spec)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}
