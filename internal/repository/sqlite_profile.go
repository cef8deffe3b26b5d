package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akarlsen/pomoplan/internal/db"
	"github.com/akarlsen/pomoplan/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT id, work_min, short_break_min, long_break_min, cycles_before_long_break
		FROM user_profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.UserProfile
	err := row.Scan(
		&p.ID,
		&p.WorkMin,
		&p.ShortBreakMin,
		&p.LongBreakMin,
		&p.CyclesBeforeLongBreak,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT OR REPLACE INTO user_profile
		(id, work_min, short_break_min, long_break_min, cycles_before_long_break)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.WorkMin,
		p.ShortBreakMin,
		p.LongBreakMin,
		p.CyclesBeforeLongBreak,
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
