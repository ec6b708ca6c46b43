package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ziwei/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ziwei/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("output.format", "json")
	_ = store.Set("output.show_animals", true)
	_ = store.Set("storage.backend", "memory")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)
	assert.True(t, settings.Output.ShowAnimals)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("output.format", "yaml")
	_ = store.Set("storage.backend", "postgres")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Output.Format, settings.Output.Format)
	assert.Equal(t, defaults.Storage.Backend, settings.Storage.Backend)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		Output:  domain.OutputSettings{Format: domain.OutputFormatJSON, ShowAnimals: true},
		Storage: domain.StorageSettings{Backend: domain.StorageMemory},
	}

	require.NoError(t, service.Save(settings))

	assert.Equal(t, "json", store.GetString("output.format"))
	assert.True(t, store.GetBool("output.show_animals"))
	assert.Equal(t, "memory", store.GetString("storage.backend"))
}

func TestSettingsService_SetOutputFormat(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetOutputFormat(domain.OutputFormatJSON))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)

	err = service.SetOutputFormat(domain.OutputFormat("xml"))
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
}

func TestSettingsService_SetStorageBackend(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetStorageBackend(domain.StorageMemory))
	assert.Equal(t, "memory", store.GetString("storage.backend"))

	err := service.SetStorageBackend(domain.StorageBackend("redis"))
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
	assert.Equal(t, "memory", store.GetString("storage.backend"))
}

func TestSettingsService_SetShowAnimals(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetShowAnimals(true))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.True(t, settings.Output.ShowAnimals)

	require.NoError(t, service.SetShowAnimals(false))
	settings, err = service.Get()
	require.NoError(t, err)
	assert.False(t, settings.Output.ShowAnimals)
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr bool
	}{
		{name: "empty config", values: nil},
		{name: "valid values", values: map[string]any{
			"output.format": "json", "storage.backend": "sqlite", "output.show_animals": true,
		}},
		{name: "bad format", values: map[string]any{"output.format": "yaml"}, wantErr: true},
		{name: "bad backend", values: map[string]any{"storage.backend": "mongo"}, wantErr: true},
		{name: "non-bool animals", values: map[string]any{"output.show_animals": "yes"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			for k, v := range tt.values {
				_ = store.Set(k, v)
			}

			err := NewSettingsService(store).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSetting)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
