package history

import (
	"prefab-reconciler/core/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature registers the history endpoints.
type Feature struct {
	repo   *history.Repository
	logger *zap.Logger
}

// NewFeature creates the history feature. repo is nil when the database is disabled.
func NewFeature(repo *history.Repository, logger *zap.Logger) *Feature {
	return &Feature{repo: repo, logger: logger}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool {
	return f.repo != nil
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.repo, f.logger).RegisterRoutes(app)
	return nil
}
