package driven

import (
	"context"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// ChartStore persists saved chart records. Only the birth input and
// metadata are stored; charts are rebuilt by the caller.
type ChartStore interface {
	// Save stores or updates a saved chart.
	Save(ctx context.Context, chart domain.SavedChart) error

	// Get retrieves a saved chart by ID.
	// Returns domain.ErrNotFound if no chart has the ID.
	Get(ctx context.Context, id string) (*domain.SavedChart, error)

	// List returns all saved charts ordered by creation time, newest first.
	List(ctx context.Context) ([]domain.SavedChart, error)

	// Delete removes a saved chart.
	// Returns domain.ErrNotFound if no chart has the ID.
	Delete(ctx context.Context, id string) error
}
