package service

import (
	"context"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/domain"
)

type PlanService interface {
	BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type PresetService interface {
	Save(ctx context.Context, name string, subjects []domain.Subject) (*domain.SubjectPreset, error)
	Get(ctx context.Context, name string) (*domain.SubjectPreset, error)
	List(ctx context.Context) ([]*domain.SubjectPreset, error)
	Delete(ctx context.Context, name string) error
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	SetPomodoro(ctx context.Context, cfg domain.PomodoroConfig) error
}
