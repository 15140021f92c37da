package ports

import "go.trai.ch/stay/internal/core/domain"

//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks

// SettingsProvider returns the current settings. Values may change between calls.
type SettingsProvider interface {
	Settings() domain.Settings
}

// SettingsLoader reads settings from a settings file and the environment.
type SettingsLoader interface {
	// Load returns the defaults overlaid with the file at path and the
	// environment. A missing file is not an error.
	Load(path string) (domain.Settings, error)
}
