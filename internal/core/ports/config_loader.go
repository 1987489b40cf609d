package ports

import "go.trai.ch/box/internal/core/domain"

// ConfigLoader defines the interface for loading settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads settings from path. An empty path selects the default
	// location, where a missing file yields domain.DefaultSettings.
	Load(path string) (*domain.Settings, error)
}
