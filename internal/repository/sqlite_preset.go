package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akarlsen/pomoplan/internal/db"
	"github.com/akarlsen/pomoplan/internal/domain"
)

// SQLitePresetRepo implements PresetRepo using a SQLite database. It takes
// a db.DBTX so preset and subject rows can be written in one transaction.
type SQLitePresetRepo struct {
	db db.DBTX
}

// NewSQLitePresetRepo creates a new SQLitePresetRepo.
func NewSQLitePresetRepo(conn db.DBTX) *SQLitePresetRepo {
	return &SQLitePresetRepo{db: conn}
}

func (r *SQLitePresetRepo) Create(ctx context.Context, p *domain.SubjectPreset) error {
	query := `INSERT INTO subject_presets (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting preset: %w", err)
	}

	for i, s := range p.Subjects {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO preset_subjects (preset_id, position, name, priority)
			VALUES (?, ?, ?, ?)`,
			p.ID, i, s.Name, s.Priority,
		)
		if err != nil {
			return fmt.Errorf("inserting preset subject %q: %w", s.Name, err)
		}
	}
	return nil
}

func (r *SQLitePresetRepo) GetByName(ctx context.Context, name string) (*domain.SubjectPreset, error) {
	query := `SELECT id, name, created_at, updated_at FROM subject_presets WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)

	p, err := r.scanPreset(row)
	if err != nil {
		return nil, err
	}

	p.Subjects, err = r.loadSubjects(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePresetRepo) List(ctx context.Context) ([]*domain.SubjectPreset, error) {
	query := `SELECT id, name, created_at, updated_at FROM subject_presets ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	defer rows.Close()

	var presets []*domain.SubjectPreset
	for rows.Next() {
		var p domain.SubjectPreset
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&p.ID, &p.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning preset row: %w", err)
		}
		if err := populateTimes(&p, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		presets = append(presets, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating presets: %w", err)
	}

	for _, p := range presets {
		p.Subjects, err = r.loadSubjects(ctx, p.ID)
		if err != nil {
			return nil, err
		}
	}
	return presets, nil
}

func (r *SQLitePresetRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subject_presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("preset %q: %w", name, ErrNotFound)
	}
	return nil
}

// loadSubjects loads a preset's subjects in stored position order.
func (r *SQLitePresetRepo) loadSubjects(ctx context.Context, presetID string) ([]domain.Subject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, priority FROM preset_subjects WHERE preset_id = ? ORDER BY position`,
		presetID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing preset subjects: %w", err)
	}
	defer rows.Close()

	var subjects []domain.Subject
	for rows.Next() {
		var s domain.Subject
		if err := rows.Scan(&s.Name, &s.Priority); err != nil {
			return nil, fmt.Errorf("scanning preset subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating preset subjects: %w", err)
	}
	return subjects, nil
}

func (r *SQLitePresetRepo) scanPreset(row *sql.Row) (*domain.SubjectPreset, error) {
	var p domain.SubjectPreset
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Name, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("preset: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning preset: %w", err)
	}
	if err := populateTimes(&p, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}

func populateTimes(p *domain.SubjectPreset, createdAtStr, updatedAtStr string) error {
	var err error
	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
