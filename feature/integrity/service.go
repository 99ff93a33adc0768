package integrity

import (
	"context"
	"errors"

	"prefab-reconciler/core/history"
	"prefab-reconciler/core/storage"
	"prefab-reconciler/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrDisabled is returned by checks of a component that is not configured.
var ErrDisabled = errors.New("component disabled")

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client and db may be nil when
// storage or the database is disabled.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
	}
}

// CheckStorage reports on the backup bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates the backup bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrDisabled
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.logger)
}

// CheckDatabase compares the history tables with their models.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrDisabled
	}
	return checks.CheckSchema(s.db, &history.Run{})
}

// FixDatabase creates the history tables or adds their missing columns.
func (s *Service) FixDatabase() error {
	if s.db == nil {
		return ErrDisabled
	}
	return history.NewRepository(s.db).Migrate()
}
