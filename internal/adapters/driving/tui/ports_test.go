package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/ziwei/internal/core/domain"
	"github.com/custodia-labs/ziwei/internal/core/natal"
	"github.com/custodia-labs/ziwei/internal/core/ports/driving"
)

// MockChartService implements driving.ChartService for testing.
type MockChartService struct {
	Saved map[string]domain.SavedChart
	Err   error
}

var _ driving.ChartService = (*MockChartService)(nil)

func (m *MockChartService) Build(_ context.Context, in domain.BirthInput) (*domain.Chart, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return natal.Build(in), nil
}

func (m *MockChartService) Save(ctx context.Context, label string, in domain.BirthInput) (*domain.SavedChart, error) {
	c, err := m.Build(ctx, in)
	if err != nil {
		return nil, err
	}
	return &domain.SavedChart{ID: "saved", Label: label, Input: in, CreatedAt: time.Now(), Chart: c}, nil
}

func (m *MockChartService) Get(_ context.Context, id string) (*domain.SavedChart, error) {
	saved, ok := m.Saved[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	saved.Chart = natal.Build(saved.Input)
	return &saved, nil
}

func (m *MockChartService) List(_ context.Context) ([]domain.SavedChart, error) {
	out := make([]domain.SavedChart, 0, len(m.Saved))
	for _, s := range m.Saved {
		out = append(out, s)
	}
	return out, nil
}

func (m *MockChartService) Delete(_ context.Context, id string) error {
	if _, ok := m.Saved[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.Saved, id)
	return nil
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, (&Ports{Chart: &MockChartService{}}).Validate())
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingChartService)

	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrInvalidPorts)
}
