package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/ziwei/internal/core/domain"
	"github.com/custodia-labs/ziwei/internal/core/ports/driven"
)

// Ensure ChartStore implements the interface.
var _ driven.ChartStore = (*ChartStore)(nil)

// ChartStore is an in-memory implementation of driven.ChartStore.
type ChartStore struct {
	mu     sync.RWMutex
	charts map[string]domain.SavedChart
}

// NewChartStore creates a new in-memory chart store.
func NewChartStore() *ChartStore {
	return &ChartStore{
		charts: make(map[string]domain.SavedChart),
	}
}

// Save stores or updates a saved chart. The rebuilt chart is not kept.
func (s *ChartStore) Save(_ context.Context, chart domain.SavedChart) error {
	if chart.ID == "" {
		return domain.ErrInvalidInput
	}
	chart.Chart = nil

	s.mu.Lock()
	defer s.mu.Unlock()
	s.charts[chart.ID] = chart
	return nil
}

// Get retrieves a saved chart by ID.
func (s *ChartStore) Get(_ context.Context, id string) (*domain.SavedChart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chart, ok := s.charts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &chart, nil
}

// List returns all saved charts, newest first. Ties break on ID.
func (s *ChartStore) List(_ context.Context) ([]domain.SavedChart, error) {
	s.mu.RLock()
	result := make([]domain.SavedChart, 0, len(s.charts))
	for _, chart := range s.charts {
		result = append(result, chart)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Delete removes a saved chart.
func (s *ChartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.charts, id)
	return nil
}
