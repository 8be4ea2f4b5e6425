package ports

import "go.trai.ch/symup/internal/core/domain"

// SettingsLoader reads upload defaults from a settings file.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load returns the settings stored at path, or nil when the file does not exist.
	Load(path string) (*domain.Settings, error)
}
