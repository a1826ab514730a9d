package dhcp

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"router-manager/core/backup"
	"router-manager/core/history"
	"router-manager/core/router"
)

// Feature wires the dhcp reservation endpoints into the application.
type Feature struct {
	service *Service
}

// NewFeature builds the feature with its service dependencies. The history
// store and snapshot store may be nil when those subsystems are disabled.
func NewFeature(factory router.Factory, defaults router.Config, logger *zap.Logger, hist *history.Store, snaps *backup.Store) *Feature {
	return &Feature{
		service: NewService(factory, defaults, logger, hist, snaps),
	}
}

// Name returns the feature identifier used in logs.
func (f *Feature) Name() string {
	return "dhcp"
}

// IsEnabled reports whether the feature should be loaded. The dhcp feature
// is the reason this service exists, so it is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
