package driving

import "github.com/custodia-labs/ziwei/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetOutputFormat updates the default chart output format.
	SetOutputFormat(format domain.OutputFormat) error

	// SetStorageBackend selects where saved charts are kept.
	SetStorageBackend(backend domain.StorageBackend) error

	// SetShowAnimals toggles zodiac animal labels in chart output.
	SetShowAnimals(show bool) error

	// Validate checks that the stored settings are usable.
	Validate() error

	// ConfigPath returns where settings are kept.
	ConfigPath() string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
