package driving

import (
	"context"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// ChartService builds natal charts and manages the chart history.
type ChartService interface {
	// Build validates the input and computes its chart.
	Build(ctx context.Context, input domain.BirthInput) (*domain.Chart, error)

	// Save builds the chart and records the input in the history.
	// An empty label is replaced with the year pillar.
	Save(ctx context.Context, label string, input domain.BirthInput) (*domain.SavedChart, error)

	// Get retrieves a saved chart by ID with its chart rebuilt.
	Get(ctx context.Context, id string) (*domain.SavedChart, error)

	// List returns saved charts, newest first. Chart is left nil.
	List(ctx context.Context) ([]domain.SavedChart, error)

	// Delete removes a saved chart.
	Delete(ctx context.Context, id string) error
}
