package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPomodoroConfig(t *testing.T) {
	cfg := DefaultPomodoroConfig()

	assert.Equal(t, 25, cfg.WorkMin)
	assert.Equal(t, 5, cfg.ShortBreakMin)
	assert.Equal(t, 15, cfg.LongBreakMin)
	assert.Equal(t, 4, cfg.CyclesBeforeLongBreak)
	require.NoError(t, cfg.Validate())
}

func TestPomodoroConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PomodoroConfig)
		wantErr string
	}{
		{"zero work", func(c *PomodoroConfig) { c.WorkMin = 0 }, "work minutes"},
		{"negative short break", func(c *PomodoroConfig) { c.ShortBreakMin = -5 }, "short break"},
		{"zero long break", func(c *PomodoroConfig) { c.LongBreakMin = 0 }, "long break"},
		{"zero cycles", func(c *PomodoroConfig) { c.CyclesBeforeLongBreak = 0 }, "cycles"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPomodoroConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestAllocationTotal(t *testing.T) {
	alloc := Allocation{"Math": 60, "History": 30, "Idle": 0}
	assert.Equal(t, 90, alloc.Total())
	assert.Equal(t, 0, Allocation{}.Total())
}
