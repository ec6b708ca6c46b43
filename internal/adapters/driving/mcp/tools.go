package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// ChartInput is the input schema for the build_chart tool.
type ChartInput struct {
	Year   int    `json:"year,omitempty" jsonschema:"civil birth year, e.g. 2023; converted to its sexagenary pillar"`
	Pillar string `json:"pillar,omitempty" jsonschema:"year pillar such as 癸卯; must agree with year when both are given"`
	Month  string `json:"month" jsonschema:"lunar month number 1-12 or its branch character (1 is 寅)"`
	Day    int    `json:"day" jsonschema:"lunar day 1-30"`
	Hour   string `json:"hour" jsonschema:"clock hour 0-23 or a branch character such as 丑"`
}

func (in ChartInput) birthInput() (domain.BirthInput, error) {
	return domain.ResolveBirthInput(in.Year, in.Pillar, in.Month, in.Day, in.Hour)
}

// SaveChartInput is the input schema for the save_chart tool.
type SaveChartInput struct {
	Label  string `json:"label,omitempty" jsonschema:"name for the saved chart (defaults to the year pillar)"`
	Year   int    `json:"year,omitempty" jsonschema:"civil birth year, e.g. 2023"`
	Pillar string `json:"pillar,omitempty" jsonschema:"year pillar such as 癸卯; must agree with year when both are given"`
	Month  string `json:"month" jsonschema:"lunar month number 1-12 or its branch character"`
	Day    int    `json:"day" jsonschema:"lunar day 1-30"`
	Hour   string `json:"hour" jsonschema:"clock hour 0-23 or a branch character"`
}

// ChartOutput is the structured form of a chart.
type ChartOutput struct {
	Pillar          string                 `json:"pillar"`
	Month           string                 `json:"month"`
	Day             int                    `json:"day"`
	Hour            string                 `json:"hour"`
	SelfPalace      string                 `json:"self_palace"`
	BodyPalace      string                 `json:"body_palace"`
	Cycle           string                 `json:"cycle"`
	Anchor          string                 `json:"anchor"`
	Transformations []TransformationOutput `json:"transformations"`
	Positions       []PositionOutput       `json:"positions"`
}

// TransformationOutput binds a tag to its star.
type TransformationOutput struct {
	Tag  string `json:"tag"`
	Star string `json:"star"`
}

// PositionOutput is one of the twelve chart positions.
type PositionOutput struct {
	Branch  string   `json:"branch"`
	Stem    string   `json:"stem"`
	Palace  string   `json:"palace"`
	Body    bool     `json:"body"`
	Primary []string `json:"primary"`
	Lucky   []string `json:"lucky"`
	Unlucky []string `json:"unlucky"`
}

// SavedChartOutput is the output schema for the save_chart tool.
type SavedChartOutput struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	CreatedAt string      `json:"created_at"`
	URI       string      `json:"uri"`
	Chart     ChartOutput `json:"chart"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_chart",
		Description: "Build a Zi Wei Dou Shu natal chart from a lunar birth date and double hour",
	}, s.handleBuildChart)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_chart",
		Description: "Build a natal chart and save it to the chart history",
	}, s.handleSaveChart)
}

// handleBuildChart handles the build_chart tool invocation.
func (s *Server) handleBuildChart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChartInput,
) (*mcp.CallToolResult, ChartOutput, error) {
	in, err := input.birthInput()
	if err != nil {
		return nil, ChartOutput{}, err
	}

	chart, err := s.ports.Chart.Build(ctx, in)
	if err != nil {
		return nil, ChartOutput{}, err
	}

	return nil, toChartOutput(chart), nil
}

// handleSaveChart handles the save_chart tool invocation.
func (s *Server) handleSaveChart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveChartInput,
) (*mcp.CallToolResult, SavedChartOutput, error) {
	in, err := domain.ResolveBirthInput(input.Year, input.Pillar, input.Month, input.Day, input.Hour)
	if err != nil {
		return nil, SavedChartOutput{}, err
	}

	saved, err := s.ports.Chart.Save(ctx, input.Label, in)
	if err != nil {
		return nil, SavedChartOutput{}, err
	}

	return nil, SavedChartOutput{
		ID:        saved.ID,
		Label:     saved.Label,
		CreatedAt: saved.CreatedAt.Format(time.RFC3339),
		URI:       chartURI(saved.ID),
		Chart:     toChartOutput(saved.Chart),
	}, nil
}

func toChartOutput(chart *domain.Chart) ChartOutput {
	if chart == nil {
		return ChartOutput{}
	}

	in := chart.Input()
	out := ChartOutput{
		Pillar:     in.Pillar(),
		Month:      in.Month.String(),
		Day:        in.Day,
		Hour:       in.Hour.String(),
		SelfPalace: chart.SelfPalace().String(),
		BodyPalace: chart.BodyPalace().String(),
		Cycle:      chart.Cycle().String(),
		Anchor:     chart.Anchor().String(),
	}

	for _, t := range chart.Transformations() {
		out.Transformations = append(out.Transformations, TransformationOutput{
			Tag:  t.Tag.String(),
			Star: t.Star.String(),
		})
	}

	for _, pos := range chart.Positions() {
		out.Positions = append(out.Positions, PositionOutput{
			Branch:  pos.Branch.String(),
			Stem:    pos.Stem.String(),
			Palace:  pos.Palace.String(),
			Body:    pos.Body,
			Primary: placedNames(pos.Primary),
			Lucky:   placedNames(pos.Lucky),
			Unlucky: starNames(pos.Unlucky),
		})
	}
	return out
}

func placedNames(stars []domain.PlacedStar) []string {
	names := make([]string, len(stars))
	for i, s := range stars {
		names[i] = s.String()
	}
	return names
}

func starNames(stars []domain.Star) []string {
	names := make([]string, len(stars))
	for i, s := range stars {
		names[i] = s.String()
	}
	return names
}
