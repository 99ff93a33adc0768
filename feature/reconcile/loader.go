package reconcile

import (
	"github.com/gofiber/fiber/v2"
)

// Feature registers the reconcile endpoints.
type Feature struct {
	service *Service
}

// NewFeature creates the reconcile feature over service.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "reconcile"
}

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
