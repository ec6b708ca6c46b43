package cli

import (
	"bytes"

	"github.com/custodia-labs/ziwei/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ziwei/internal/core/services"
	"github.com/custodia-labs/ziwei/internal/logger"
)

// setupTestServices wires in-memory services and returns a cleanup that
// restores the previous services and resets flag variables, which cobra
// keeps between Execute calls.
func setupTestServices() func() {
	origChart, origSettings := chartService, settingsService
	origIsTerminal := isTerminal

	chartService = services.NewChartService(memory.NewChartStore())
	settingsService = services.NewSettingsService(memory.NewConfigStore())

	return func() {
		chartService, settingsService = origChart, origSettings
		isTerminal = origIsTerminal
		resetFlags()
		logger.SetVerbose(false)
	}
}

func resetFlags() {
	verbose = false
	chartYear, chartPillar, chartMonth, chartDay, chartHour = 0, "", "", 0, ""
	chartJSON, chartSave, chartLabel = false, false, ""
	historyShowJSON = false
	viewChartID = ""
}

// execute runs the root command with args and returns combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	resetFlags()
	return buf.String(), err
}

var guiMaoArgs = []string{"--pillar", "癸卯", "--month", "2", "--day", "10", "--hour", "1"}

func withArgs(cmd string, extra ...string) []string {
	args := append([]string{cmd}, guiMaoArgs...)
	return append(args, extra...)
}
