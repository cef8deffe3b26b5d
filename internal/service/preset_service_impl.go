package service

import (
	"context"
	"math"
	"time"

	"github.com/akarlsen/pomoplan/internal/contract"
	"github.com/akarlsen/pomoplan/internal/db"
	"github.com/akarlsen/pomoplan/internal/domain"
	"github.com/akarlsen/pomoplan/internal/repository"
	"github.com/google/uuid"
)

type presetService struct {
	presets repository.PresetRepo
	uow     db.UnitOfWork
}

// NewPresetService creates a PresetService. Saves run inside a unit of
// work so the preset row and its subject rows commit together.
func NewPresetService(presets repository.PresetRepo, uow db.UnitOfWork) PresetService {
	return &presetService{presets: presets, uow: uow}
}

func (s *presetService) Save(ctx context.Context, name string, subjects []domain.Subject) (*domain.SubjectPreset, error) {
	if name == "" {
		return nil, contract.InvalidInput("preset name is empty")
	}
	if err := validateSubjects(subjects); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	preset := &domain.SubjectPreset{
		ID:        uuid.New().String(),
		Name:      name,
		Subjects:  subjects,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePresetRepo(tx).Create(ctx, preset)
	})
	if err != nil {
		return nil, err
	}
	return preset, nil
}

func (s *presetService) Get(ctx context.Context, name string) (*domain.SubjectPreset, error) {
	return s.presets.GetByName(ctx, name)
}

func (s *presetService) List(ctx context.Context) ([]*domain.SubjectPreset, error) {
	return s.presets.List(ctx)
}

func (s *presetService) Delete(ctx context.Context, name string) error {
	return s.presets.Delete(ctx, name)
}

// validateSubjects applies the same constraints the allocator enforces,
// so a saved preset is always usable in a plan request.
func validateSubjects(subjects []domain.Subject) error {
	if len(subjects) == 0 {
		return contract.InvalidInput("subject list is empty")
	}
	seen := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		if s.Name == "" {
			return contract.InvalidInput("subject name is empty")
		}
		if seen[s.Name] {
			return contract.InvalidInput("duplicate subject " + s.Name)
		}
		seen[s.Name] = true
		if math.IsNaN(s.Priority) || math.IsInf(s.Priority, 0) {
			return contract.InvalidInput("subject " + s.Name + " has non-finite priority")
		}
		if s.Priority <= 0 {
			return contract.InvalidInput("subject " + s.Name + " has non-positive priority")
		}
	}
	return nil
}
