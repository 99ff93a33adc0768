package history

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Recorder stores runs. A nil *Repository is not a valid Recorder; use Nop.
type Recorder interface {
	Record(ctx context.Context, run *Run) error
}

// Nop discards runs; it is used when the database is disabled.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, *Run) error { return nil }

// Repository persists runs with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the runs table or adds its missing columns.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", Run{}.TableName(), err)
	}
	return nil
}

// Record inserts run.
func (r *Repository) Record(ctx context.Context, run *Run) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the latest runs, newest first. limit <= 0 means 50.
func (r *Repository) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	var runs []Run
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Get returns the run with id, or gorm.ErrRecordNotFound.
func (r *Repository) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	if err := r.db.WithContext(ctx).First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}
