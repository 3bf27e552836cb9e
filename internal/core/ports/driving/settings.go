package driving

import "github.com/gutentopics/gutentopics/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.AppSettings, error)

	// Set validates and stores a single setting by key.
	Set(key, value string) error

	// Keys returns the supported setting keys.
	Keys() []string

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
