package domain

import "fmt"

// PomodoroConfig holds the cadence parameters for expanding a minute budget
// into study and break segments.
type PomodoroConfig struct {
	WorkMin               int
	ShortBreakMin         int
	LongBreakMin          int
	CyclesBeforeLongBreak int
}

// DefaultPomodoroConfig returns the classic 25/5/15 cadence with a long
// break after every fourth work block.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		WorkMin:               25,
		ShortBreakMin:         5,
		LongBreakMin:          15,
		CyclesBeforeLongBreak: 4,
	}
}

// Validate checks that every cadence field is a positive integer.
func (c PomodoroConfig) Validate() error {
	if c.WorkMin <= 0 {
		return fmt.Errorf("work minutes must be positive, got %d", c.WorkMin)
	}
	if c.ShortBreakMin <= 0 {
		return fmt.Errorf("short break minutes must be positive, got %d", c.ShortBreakMin)
	}
	if c.LongBreakMin <= 0 {
		return fmt.Errorf("long break minutes must be positive, got %d", c.LongBreakMin)
	}
	if c.CyclesBeforeLongBreak < 1 {
		return fmt.Errorf("cycles before long break must be >= 1, got %d", c.CyclesBeforeLongBreak)
	}
	return nil
}
