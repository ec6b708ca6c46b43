package mcp

import (
	"github.com/custodia-labs/ziwei/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chart builds charts and manages the saved history.
	Chart driving.ChartService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Chart == nil {
		return ErrMissingChartService
	}
	return nil
}
