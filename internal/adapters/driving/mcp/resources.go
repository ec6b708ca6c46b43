package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ziwei resources.
	uriScheme = "ziwei://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "charts",
		Name:        "charts",
		Description: "Saved natal charts, newest first",
		MIMEType:    "application/json",
	}, s.handleChartsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "charts/{chartId}",
		Name:        "chart",
		Description: "A saved natal chart with every position",
		MIMEType:    "application/json",
	}, s.handleChartResource)
}

// chartSummary is one entry of the charts listing.
type chartSummary struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Pillar    string `json:"pillar"`
	CreatedAt string `json:"created_at"`
	URI       string `json:"uri"`
}

// handleChartsResource lists the saved charts. Without storage the list is empty.
func (s *Server) handleChartsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	charts, err := s.ports.Chart.List(ctx)
	if errors.Is(err, domain.ErrStorageUnavailable) {
		return jsonResult(req.Params.URI, []chartSummary{})
	}
	if err != nil {
		return nil, fmt.Errorf("listing charts: %w", err)
	}

	summaries := make([]chartSummary, len(charts))
	for i := range charts {
		summaries[i] = chartSummary{
			ID:        charts[i].ID,
			Label:     charts[i].Label,
			Pillar:    charts[i].Input.Pillar(),
			CreatedAt: charts[i].CreatedAt.Format(time.RFC3339),
			URI:       chartURI(charts[i].ID),
		}
	}
	return jsonResult(req.Params.URI, summaries)
}

// handleChartResource returns one saved chart with its rebuilt positions.
func (s *Server) handleChartResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	chartID := extractChartID(req.Params.URI)
	if chartID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	saved, err := s.ports.Chart.Get(ctx, chartID)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrStorageUnavailable) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting chart: %w", err)
	}

	return jsonResult(req.Params.URI, SavedChartOutput{
		ID:        saved.ID,
		Label:     saved.Label,
		CreatedAt: saved.CreatedAt.Format(time.RFC3339),
		URI:       chartURI(saved.ID),
		Chart:     toChartOutput(saved.Chart),
	})
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func chartURI(id string) string {
	return uriScheme + "charts/" + id
}

// extractChartID extracts the chart ID from a URI like ziwei://charts/{chartId}.
func extractChartID(uri string) string {
	const prefix = uriScheme + "charts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
