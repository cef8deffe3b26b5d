package domain

// UserProfile holds the user's default pomodoro cadence, applied to any
// plan request that does not override it.
type UserProfile struct {
	ID                    string
	WorkMin               int
	ShortBreakMin         int
	LongBreakMin          int
	CyclesBeforeLongBreak int
}

// Pomodoro returns the profile's cadence as a PomodoroConfig.
func (p *UserProfile) Pomodoro() PomodoroConfig {
	return PomodoroConfig{
		WorkMin:               p.WorkMin,
		ShortBreakMin:         p.ShortBreakMin,
		LongBreakMin:          p.LongBreakMin,
		CyclesBeforeLongBreak: p.CyclesBeforeLongBreak,
	}
}
