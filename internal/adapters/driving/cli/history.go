package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

var historyShowJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved charts",
	Long:  `Lists, shows and deletes charts recorded with 'ziwei chart --save'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved charts",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [chart-id]",
	Short: "Show a saved chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [chart-id]",
	Short: "Delete a saved chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyShowCmd.Flags().BoolVar(&historyShowJSON, "json", false, "output the chart as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	charts, err := chartService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list charts: %w", err)
	}

	if len(charts) == 0 {
		cmd.Println("No saved charts.")
		return nil
	}

	cmd.Println("Saved charts:")
	cmd.Println()
	for i := range charts {
		c := &charts[i]
		cmd.Printf("  %s  %s  %s\n", c.ID, c.CreatedAt.Local().Format(time.DateTime), c.Label)
		cmd.Printf("      %s年 %s月 %d日 %s時\n", c.Input.Pillar(), c.Input.Month, c.Input.Day, c.Input.Hour)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	saved, err := chartService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get chart: %w", err)
	}

	opts := loadRenderOptions()
	if historyShowJSON || opts.format == domain.OutputFormatJSON {
		return writeJSON(cmd, saved)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n\n", saved.Label, saved.ID)
	return writeChart(cmd, saved.Chart, opts)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	if err := chartService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete chart: %w", err)
	}

	cmd.Printf("Deleted chart %s\n", args[0])
	return nil
}
