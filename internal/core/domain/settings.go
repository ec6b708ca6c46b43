package domain

const unknownDescription = "Unknown"

// OutputFormat selects how charts are printed by the CLI.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText prints one line per chart position.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON prints the chart as indented JSON.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Text (one line per position)"
	case OutputFormatJSON:
		return "JSON (machine readable)"
	default:
		return unknownDescription
	}
}

// StorageBackend identifies where saved charts are kept.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists chart history in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps chart history for the lifetime of the process only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if charts survive process exit.
func (b StorageBackend) IsPersistent() bool {
	return b == StorageSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (persistent)"
	case StorageMemory:
		return "Memory (session only)"
	default:
		return unknownDescription
	}
}

// OutputSettings holds chart presentation configuration.
type OutputSettings struct {
	// Format is the default CLI output format.
	Format OutputFormat

	// ShowAnimals prints the zodiac animal next to each branch.
	ShowAnimals bool
}

// StorageSettings holds chart history configuration.
type StorageSettings struct {
	// Backend selects the history store.
	Backend StorageBackend
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Output holds presentation settings.
	Output OutputSettings

	// Storage holds history store settings.
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Format:      OutputFormatText,
			ShowAnimals: false,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageMemory}
}
