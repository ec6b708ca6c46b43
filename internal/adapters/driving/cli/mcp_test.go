package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ziwei/internal/adapters/driving/mcp"
)

func TestMCPCmd_HasServe(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"mcp", "serve"})

	require.NoError(t, err)
	assert.Equal(t, mcpServeCmd, cmd)
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")

	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
	assert.Equal(t, "p", flag.Shorthand)
}

func TestMCPServeCmd_NoService(t *testing.T) {
	orig := chartService
	chartService = nil
	defer func() { chartService = orig }()

	_, err := execute("mcp", "serve")

	assert.EqualError(t, err, "chart service not configured")
}

func TestMCPServeCmd_RateFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("rate")

	require.NotNil(t, flag)
	assert.Equal(t, "20", flag.DefValue)
}

func TestMCPRateLimit(t *testing.T) {
	tests := []struct {
		name string
		rps  float64
		want mcp.RateLimitConfig
	}{
		{"default", 20, mcp.RateLimitConfig{RequestsPerSecond: 20, BurstSize: 40}},
		{"slow rate keeps a burst of one", 0.2, mcp.RateLimitConfig{RequestsPerSecond: 0.2, BurstSize: 1}},
		{"zero disables", 0, mcp.RateLimitConfig{}},
		{"negative disables", -1, mcp.RateLimitConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mcpRateLimit(tt.rps)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rps > 0, got.Enabled())
		})
	}
}
