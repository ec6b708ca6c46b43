package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change settings",
	Long:  `View and change the output and storage settings kept in config.toml.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsFormatCmd = &cobra.Command{
	Use:       "format [text|json]",
	Short:     "Set the default chart output format",
	Args:      cobra.ExactArgs(1),
	ValidArgs: formatNames(),
	RunE:      runSettingsFormat,
}

var settingsStorageCmd = &cobra.Command{
	Use:   "storage [sqlite|memory]",
	Short: "Set the chart history backend",
	Long: `Selects where saved charts are kept. The memory backend forgets charts
when the process exits. The change takes effect on the next run.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: backendNames(),
	RunE:      runSettingsStorage,
}

var settingsAnimalsCmd = &cobra.Command{
	Use:       "animals [on|off]",
	Short:     "Show zodiac animals next to branches",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runSettingsAnimals,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsFormatCmd)
	settingsCmd.AddCommand(settingsStorageCmd)
	settingsCmd.AddCommand(settingsAnimalsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Printf("  Animals: %s\n", onOff(settings.Output.ShowAnimals))
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	cmd.Println()

	defaults := settingsService.GetDefaults()

	cmd.Println("Available formats:")
	for _, f := range domain.AllOutputFormats() {
		cmd.Printf("  %-7s %s%s\n", f, f.Description(), defaultMark(f == defaults.Output.Format))
	}
	cmd.Println("Available backends:")
	for _, b := range domain.AllStorageBackends() {
		cmd.Printf("  %-7s %s%s\n", b, b.Description(), defaultMark(b == defaults.Storage.Backend))
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Invalid values are replaced by defaults until fixed.")
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsFormat(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	format := domain.OutputFormat(strings.ToLower(args[0]))
	if err := settingsService.SetOutputFormat(format); err != nil {
		return fmt.Errorf("set output format: %w", err)
	}

	cmd.Printf("Output format set to %s\n", format)
	return nil
}

func runSettingsStorage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend := domain.StorageBackend(strings.ToLower(args[0]))
	if err := settingsService.SetStorageBackend(backend); err != nil {
		return fmt.Errorf("set storage backend: %w", err)
	}

	cmd.Printf("Storage backend set to %s (takes effect on next run)\n", backend)
	if !backend.IsPersistent() {
		cmd.Println("Warning: charts saved with this backend are lost when ziwei exits.")
	}
	return nil
}

func runSettingsAnimals(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	show, err := parseToggle(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetShowAnimals(show); err != nil {
		return fmt.Errorf("set animals: %w", err)
	}

	cmd.Printf("Animals %s\n", onOff(show))
	return nil
}

// parseToggle accepts on/off and the usual boolean spellings.
func parseToggle(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q: %w", s, domain.ErrInvalidSetting)
	}
}

func formatNames() []string {
	formats := domain.AllOutputFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return names
}

func backendNames() []string {
	backends := domain.AllStorageBackends()
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.String()
	}
	return names
}

func defaultMark(isDefault bool) string {
	if isDefault {
		return " (default)"
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
