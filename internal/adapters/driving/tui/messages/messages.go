// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// ChartLoaded carries a built or fetched chart back to the model.
type ChartLoaded struct {
	Chart *domain.Chart
	Label string
	Err   error
}

// SelectionChanged is sent when the cursor moves to another branch.
type SelectionChanged struct {
	Branch domain.Branch
}
