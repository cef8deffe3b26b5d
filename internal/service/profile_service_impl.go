package service

import (
	"context"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/akarlsen/pomoplan/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

// NewProfileService creates a ProfileService over the given repo.
func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) SetPomodoro(ctx context.Context, cfg domain.PomodoroConfig) error {
	if err := cfg.Validate(); err != nil {
		return contract.InvalidInput(err.Error())
	}
	return s.profiles.Upsert(ctx, &domain.UserProfile{
		ID:                    "default",
		WorkMin:               cfg.WorkMin,
		ShortBreakMin:         cfg.ShortBreakMin,
		LongBreakMin:          cfg.LongBreakMin,
		CyclesBeforeLongBreak: cfg.CyclesBeforeLongBreak,
	})
}
