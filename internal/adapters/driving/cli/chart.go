package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

var (
	chartYear   int
	chartPillar string
	chartMonth  string
	chartDay    int
	chartHour   string
	chartJSON   bool
	chartSave   bool
	chartLabel  string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a natal chart",
	Long: `Computes the natal chart for a lunar birth date.

The birth year is given either as a civil year (--year 2023) or as a
sexagenary pillar (--pillar 癸卯). The month accepts a lunar month number
(1-12) or its branch, the hour accepts a clock hour (0-23) or its branch.

Examples:
  ziwei chart --year 2023 --month 2 --day 10 --hour 1
  ziwei chart --pillar 癸卯 --month 卯 --day 10 --hour 丑 --json
  ziwei chart --pillar 癸卯 --month 2 --day 10 --hour 丑時 --save --label alice`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	addBirthFlags(chartCmd)
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "output the chart as JSON")
	chartCmd.Flags().BoolVar(&chartSave, "save", false, "record the chart in the history")
	chartCmd.Flags().StringVar(&chartLabel, "label", "", "label for a saved chart (defaults to the year pillar)")
	rootCmd.AddCommand(chartCmd)
}

// addBirthFlags registers the birth input flags shared by chart and view.
func addBirthFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&chartYear, "year", 0, "civil birth year, e.g. 2023")
	cmd.Flags().StringVar(&chartPillar, "pillar", "", "year pillar, e.g. 癸卯")
	cmd.Flags().StringVar(&chartMonth, "month", "", "lunar month (1-12) or branch")
	cmd.Flags().IntVar(&chartDay, "day", 0, "lunar day (1-30)")
	cmd.Flags().StringVar(&chartHour, "hour", "", "clock hour (0-23) or branch")
}

func birthInputFromFlags() (domain.BirthInput, error) {
	return domain.ResolveBirthInput(chartYear, chartPillar, chartMonth, chartDay, chartHour)
}

func runChart(cmd *cobra.Command, _ []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	in, err := birthInputFromFlags()
	if err != nil {
		return err
	}

	opts := loadRenderOptions()
	if chartJSON {
		opts.format = domain.OutputFormatJSON
	}

	if chartSave {
		saved, err := chartService.Save(cmd.Context(), chartLabel, in)
		if err != nil {
			return fmt.Errorf("save chart: %w", err)
		}
		if opts.format == domain.OutputFormatJSON {
			return writeJSON(cmd, saved)
		}
		if err := writeChart(cmd, saved.Chart, opts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved chart %s (%s)\n", saved.ID, saved.Label)
		return nil
	}

	chart, err := chartService.Build(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}
	if opts.format == domain.OutputFormatJSON {
		return writeJSON(cmd, chart)
	}
	return writeChart(cmd, chart, opts)
}

// loadRenderOptions reads output preferences, falling back to defaults
// when no settings service is wired.
func loadRenderOptions() renderOptions {
	defaults := domain.DefaultAppSettings()
	opts := renderOptions{format: defaults.Output.Format, showAnimals: defaults.Output.ShowAnimals}
	if settingsService == nil {
		return opts
	}
	settings, err := settingsService.Get()
	if err != nil {
		return opts
	}
	opts.format = settings.Output.Format
	opts.showAnimals = settings.Output.ShowAnimals
	return opts
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal chart: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func writeChart(cmd *cobra.Command, chart *domain.Chart, opts renderOptions) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), renderChart(chart, opts.showAnimals))
	return err
}
