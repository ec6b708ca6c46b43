package services

import (
	"fmt"

	"github.com/custodia-labs/ziwei/internal/core/domain"
	"github.com/custodia-labs/ziwei/internal/core/ports/driven"
	"github.com/custodia-labs/ziwei/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputFormat   = "output.format"
	keyShowAnimals    = "output.show_animals"
	keyStorageBackend = "storage.backend"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unknown or missing values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Format:      s.getOutputFormat(defaults.Output.Format),
			ShowAnimals: s.getBool(keyShowAnimals, defaults.Output.ShowAnimals),
		},
		Storage: domain.StorageSettings{
			Backend: s.getStorageBackend(defaults.Storage.Backend),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyShowAnimals, settings.Output.ShowAnimals); err != nil {
		return fmt.Errorf("save show animals: %w", err)
	}
	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	return nil
}

// SetOutputFormat updates the default chart output format.
func (s *SettingsService) SetOutputFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("output format %q: %w", format, domain.ErrInvalidSetting)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Format = format
	return s.Save(settings)
}

// SetStorageBackend selects where saved charts are kept.
// The change takes effect on the next start.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("storage backend %q: %w", backend, domain.ErrInvalidSetting)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Storage.Backend = backend
	return s.Save(settings)
}

// SetShowAnimals toggles zodiac animal labels in chart output.
func (s *SettingsService) SetShowAnimals(show bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.ShowAnimals = show
	return s.Save(settings)
}

// Validate checks the raw stored values, not the defaulted view Get returns.
func (s *SettingsService) Validate() error {
	if raw := s.configStore.GetString(keyOutputFormat); raw != "" && !domain.OutputFormat(raw).IsValid() {
		return fmt.Errorf("%s = %q: %w", keyOutputFormat, raw, domain.ErrInvalidSetting)
	}
	if raw := s.configStore.GetString(keyStorageBackend); raw != "" && !domain.StorageBackend(raw).IsValid() {
		return fmt.Errorf("%s = %q: %w", keyStorageBackend, raw, domain.ErrInvalidSetting)
	}
	if val, exists := s.configStore.Get(keyShowAnimals); exists {
		if _, ok := val.(bool); !ok {
			return fmt.Errorf("%s = %v: %w", keyShowAnimals, val, domain.ErrInvalidSetting)
		}
	}
	return nil
}

// ConfigPath returns where settings are kept.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(keyOutputFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getStorageBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
