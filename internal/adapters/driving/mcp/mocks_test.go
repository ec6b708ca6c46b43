package mcp

import (
	"context"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// mockChartService is a mock implementation of driving.ChartService.
type mockChartService struct {
	chart   *domain.Chart
	saved   *domain.SavedChart
	charts  []domain.SavedChart
	err     error
	built   []domain.BirthInput
	label   string
	fetched string
}

func (m *mockChartService) Build(_ context.Context, in domain.BirthInput) (*domain.Chart, error) {
	m.built = append(m.built, in)
	return m.chart, m.err
}

func (m *mockChartService) Save(_ context.Context, label string, in domain.BirthInput) (*domain.SavedChart, error) {
	m.label = label
	m.built = append(m.built, in)
	return m.saved, m.err
}

func (m *mockChartService) Get(_ context.Context, id string) (*domain.SavedChart, error) {
	m.fetched = id
	return m.saved, m.err
}

func (m *mockChartService) List(_ context.Context) ([]domain.SavedChart, error) {
	return m.charts, m.err
}

func (m *mockChartService) Delete(_ context.Context, _ string) error {
	return m.err
}
