// Package cli provides the command-line interface for ziwei.
// It is a driving adapter: commands translate flags into calls on the
// driving ports and print the results.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ziwei/internal/core/ports/driving"
	"github.com/custodia-labs/ziwei/internal/logger"
)

var (
	version = "dev"
	verbose bool

	chartService    driving.ChartService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "ziwei",
	Short: "Zi Wei Dou Shu natal charts",
	Long: `ziwei computes Zi Wei Dou Shu (紫微斗數) natal charts from a lunar birth
date: the twelve palaces, the fourteen primary stars, the lucky and unlucky
minor stars, and the four transformations of the birth year.

Charts can be printed as text or JSON, kept in a local history, browsed in a
terminal UI, or served to AI assistants over the Model Context Protocol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the driving ports used by the commands.
func SetServices(chart driving.ChartService, settings driving.SettingsService) {
	chartService = chart
	settingsService = settings
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
