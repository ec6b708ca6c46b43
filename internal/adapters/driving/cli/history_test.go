package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

func TestHistoryCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(historyCmd.Commands()))
	for _, cmd := range historyCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"list", "show", "delete"}, names)
}

func TestHistoryShowCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("history", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestHistoryCmd_NoService(t *testing.T) {
	orig := chartService
	chartService = nil
	defer func() { chartService = orig }()

	for _, args := range [][]string{{"history", "list"}, {"history", "show", "x"}, {"history", "delete", "x"}} {
		_, err := execute(args...)
		assert.EqualError(t, err, "chart service not configured", "%v", args)
	}
}

func TestHistoryListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("history", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No saved charts.")
}

func saveTestChart(t *testing.T, label string) *domain.SavedChart {
	t.Helper()
	in, err := domain.ResolveBirthInput(0, "癸卯", "2", 10, "1")
	require.NoError(t, err)
	saved, err := chartService.Save(context.Background(), label, in)
	require.NoError(t, err)
	return saved
}

func TestHistoryListCmd_ShowsSavedCharts(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	saved := saveTestChart(t, "alice")

	out, err := execute("history", "list")

	require.NoError(t, err)
	assert.Contains(t, out, saved.ID)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "癸卯年 卯月 10日 丑時")
}

func TestHistoryShowCmd_Text(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	saved := saveTestChart(t, "alice")

	out, err := execute("history", "show", saved.ID)

	require.NoError(t, err)
	assert.Contains(t, out, "alice ("+saved.ID+")")
	assert.Contains(t, out, "寅 甲寅 命宮")
}

func TestHistoryShowCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	saved := saveTestChart(t, "alice")

	out, err := execute("history", "show", saved.ID, "--json")
	require.NoError(t, err)

	var decoded struct {
		ID    string         `json:"id"`
		Label string         `json:"label"`
		Chart map[string]any `json:"chart"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, saved.ID, decoded.ID)
	assert.Equal(t, "alice", decoded.Label)
	assert.Equal(t, "午", decoded.Chart["anchor"])
}

func TestHistoryShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("history", "show", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryDeleteCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	saved := saveTestChart(t, "alice")

	out, err := execute("history", "delete", saved.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted chart "+saved.ID)

	_, err = execute("history", "delete", saved.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
