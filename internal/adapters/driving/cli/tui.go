package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui"
)

var viewChartID string

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// viewCmd represents the view command.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse a chart in the terminal UI",
	Long: `Opens a chart in the interactive terminal viewer.

The chart is either computed from the birth flags (same as 'ziwei chart')
or loaded from the history with --id.

Controls:
  ←↑↓→/hjkl  - Move around the ring
  tab        - Next branch
  m / b      - Jump to 命宮 / 身宮
  ?          - Toggle help
  q          - Quit`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	addBirthFlags(viewCmd)
	viewCmd.Flags().StringVar(&viewChartID, "id", "", "show a saved chart")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, _ []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	app, err := tui.NewApp(&tui.Ports{Chart: chartService})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if viewChartID != "" {
		app.WithSavedChart(viewChartID)
	} else {
		in, err := birthInputFromFlags()
		if err != nil {
			return err
		}
		app.WithInput(in)
	}

	if !isTerminal() {
		return errors.New("view requires an interactive terminal; use 'ziwei chart' instead")
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
