// Package tui provides an interactive terminal chart viewer for ziwei.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/ziwei/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Chart builds new charts and fetches saved ones.
	Chart driving.ChartService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Chart == nil {
		return ErrMissingChartService
	}
	return nil
}
