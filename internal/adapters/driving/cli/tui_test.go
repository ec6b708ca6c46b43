package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

func TestViewCmd_Use(t *testing.T) {
	assert.Equal(t, "view", viewCmd.Use)
	assert.NotNil(t, viewCmd.Flags().Lookup("id"))
	assert.NotNil(t, viewCmd.Flags().Lookup("pillar"))
}

func TestViewCmd_NoService(t *testing.T) {
	orig := chartService
	chartService = nil
	defer func() { chartService = orig }()

	_, err := execute(withArgs("view")...)

	assert.EqualError(t, err, "chart service not configured")
}

func TestViewCmd_InvalidInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	isTerminal = func() bool { return false }

	_, err := execute("view", "--year", "2023", "--month", "2", "--day", "0", "--hour", "1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestViewCmd_RequiresTerminal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	isTerminal = func() bool { return false }

	tests := [][]string{
		withArgs("view"),
		{"view", "--id", "some-id"},
	}
	for _, args := range tests {
		_, err := execute(args...)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "interactive terminal")
	}
}
