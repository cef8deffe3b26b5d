package repository

import (
	"context"
	"testing"

	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/akarlsen/pomoplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_GetSeededDefault(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(database)

	p, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "default", p.ID)
	assert.Equal(t, domain.DefaultPomodoroConfig(), p.Pomodoro())
}

func TestProfileRepo_UpsertRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(database)
	ctx := context.Background()

	updated := &domain.UserProfile{
		ID:                    "default",
		WorkMin:               50,
		ShortBreakMin:         10,
		LongBreakMin:          20,
		CyclesBeforeLongBreak: 3,
	}
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
