package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ziwei/internal/core/domain"
	"github.com/custodia-labs/ziwei/internal/core/natal"
	"github.com/custodia-labs/ziwei/internal/core/ports/driven"
	"github.com/custodia-labs/ziwei/internal/core/ports/driving"
	"github.com/custodia-labs/ziwei/internal/logger"
)

// Ensure ChartService implements the interface.
var _ driving.ChartService = (*ChartService)(nil)

// ChartService builds charts and manages saved chart history.
// The chart store is optional; without it only Build works.
type ChartService struct {
	chartStore driven.ChartStore
	now        func() time.Time
}

// NewChartService creates a new chart service. chartStore may be nil.
func NewChartService(chartStore driven.ChartStore) *ChartService {
	return &ChartService{
		chartStore: chartStore,
		now:        time.Now,
	}
}

// Build validates the input and computes its chart.
func (s *ChartService) Build(ctx context.Context, input domain.BirthInput) (*domain.Chart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger.Section("Chart Derivation")
	logger.Debug("Input: year %s, month %s, day %d, hour %s",
		input.Pillar(), input.Month, input.Day, input.Hour)

	d := natal.Derive(input)
	logger.Debug("Self palace: %s, body palace: %s", d.Self, d.Body)
	logger.Debug("Elemental cycle: %s (period %d)", d.Cycle, d.Cycle.Period())
	logger.Debug("紫微 anchor: %s, 天府 mirror: %s", d.Anchor, natal.MirrorAnchor(d.Anchor))
	for _, t := range d.Transformations {
		logger.Debug("Transformation %s: %s", t.Tag, t.Star)
	}

	return natal.Assemble(input, d), nil
}

// Save builds the chart and records the input in the history.
func (s *ChartService) Save(ctx context.Context, label string, input domain.BirthInput) (*domain.SavedChart, error) {
	if s.chartStore == nil {
		return nil, domain.ErrStorageUnavailable
	}

	chart, err := s.Build(ctx, input)
	if err != nil {
		return nil, err
	}

	label = strings.TrimSpace(label)
	if label == "" {
		label = input.Pillar()
	}

	saved := domain.SavedChart{
		ID:        uuid.New().String(),
		Label:     label,
		Input:     input,
		CreatedAt: s.now().UTC(),
	}
	if err := s.chartStore.Save(ctx, saved); err != nil {
		return nil, fmt.Errorf("save chart: %w", err)
	}
	logger.Info("Saved chart %s (%s)", saved.ID, saved.Label)

	saved.Chart = chart
	return &saved, nil
}

// Get retrieves a saved chart by ID and rebuilds its chart.
func (s *ChartService) Get(ctx context.Context, id string) (*domain.SavedChart, error) {
	if s.chartStore == nil {
		return nil, domain.ErrStorageUnavailable
	}
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}

	saved, err := s.chartStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	chart, err := s.Build(ctx, saved.Input)
	if err != nil {
		return nil, fmt.Errorf("rebuild chart %s: %w", id, err)
	}
	saved.Chart = chart
	return saved, nil
}

// List returns saved charts, newest first.
func (s *ChartService) List(ctx context.Context) ([]domain.SavedChart, error) {
	if s.chartStore == nil {
		return nil, domain.ErrStorageUnavailable
	}
	charts, err := s.chartStore.List(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Listed %d saved charts", len(charts))
	return charts, nil
}

// Delete removes a saved chart.
func (s *ChartService) Delete(ctx context.Context, id string) error {
	if s.chartStore == nil {
		return domain.ErrStorageUnavailable
	}
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidInput
	}
	return s.chartStore.Delete(ctx, id)
}
