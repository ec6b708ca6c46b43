package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ziwei/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes the build_chart and save_chart tools and the
ziwei://charts resources. By default it communicates over stdio using
JSON-RPC. Use --port to serve the streamable HTTP transport instead.

Examples:
  # Stdio mode (default, for desktop assistants)
  ziwei mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  ziwei mcp serve --port 8080

  # HTTP mode allowing 5 requests per second across all clients
  ziwei mcp serve --port 8080 --rate 5

Assistant configuration:
  {
    "mcpServers": {
      "ziwei": {
        "command": "/path/to/ziwei",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRateLimit.RequestsPerSecond,
		"HTTP requests per second across all clients (0 = unlimited)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	rps, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}

	if chartService == nil {
		return errors.New("chart service not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{Chart: chartService})
	if err != nil {
		return err
	}
	server.SetRateLimit(mcpRateLimit(rps))

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// mcpRateLimit scales the default burst to the requested rate.
func mcpRateLimit(rps float64) mcp.RateLimitConfig {
	if rps <= 0 {
		return mcp.RateLimitConfig{}
	}
	burst := int(2 * rps)
	if burst < 1 {
		burst = 1
	}
	return mcp.RateLimitConfig{RequestsPerSecond: rps, BurstSize: burst}
}
