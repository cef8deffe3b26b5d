package repository

import (
	"context"

	"github.com/akarlsen/pomoplan/internal/domain"
)

type PresetRepo interface {
	Create(ctx context.Context, p *domain.SubjectPreset) error
	GetByName(ctx context.Context, name string) (*domain.SubjectPreset, error)
	List(ctx context.Context) ([]*domain.SubjectPreset, error)
	Delete(ctx context.Context, name string) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
