// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the ziwei home directory.
//
// Adapters:
//   - ConfigStore: TOML-based settings storage (config.toml)
package file
