package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParts() ChartParts {
	var parts ChartParts
	parts.Input = BirthInput{YearStem: StemGui, YearBranch: BranchMao, Month: BranchMao, Day: 10, Hour: BranchChou}
	parts.Self = BranchYin
	parts.Body = BranchChen
	parts.Cycle = CycleWater
	parts.Anchor = BranchWu
	for _, b := range AllBranches() {
		parts.Positions[b] = Position{
			Branch:  b,
			Palace:  Palace(mod(int(b)-int(BranchYin), PalaceCount)),
			Primary: []PlacedStar{},
			Lucky:   []PlacedStar{},
			Unlucky: []Star{},
		}
	}
	parts.Positions[BranchWu].Primary = []PlacedStar{{Name: StarZiWei}}
	parts.Positions[BranchSi].Lucky = []PlacedStar{{Name: StarTianMa}}
	parts.Positions[BranchZi].Unlucky = []Star{StarDiJie}
	parts.Positions[BranchChen].Body = true
	return parts
}

func TestNewChart_CopiesParts(t *testing.T) {
	parts := sampleParts()
	chart := NewChart(parts)

	parts.Positions[BranchWu].Primary[0] = PlacedStar{Name: StarPoJun}
	assert.Equal(t, StarZiWei, chart.At(BranchWu).Primary[0].Name)
}

func TestChart_Accessors(t *testing.T) {
	chart := NewChart(sampleParts())

	assert.Equal(t, BranchYin, chart.SelfPalace())
	assert.Equal(t, BranchChen, chart.BodyPalace())
	assert.Equal(t, CycleWater, chart.Cycle())
	assert.Equal(t, BranchWu, chart.Anchor())
	assert.Equal(t, 10, chart.Input().Day)
	assert.Len(t, chart.Positions(), BranchCount)
}

func TestChart_Locate(t *testing.T) {
	chart := NewChart(sampleParts())

	b, ok := chart.Locate(StarZiWei)
	assert.True(t, ok)
	assert.Equal(t, BranchWu, b)

	b, ok = chart.Locate(StarTianMa)
	assert.True(t, ok)
	assert.Equal(t, BranchSi, b)

	b, ok = chart.Locate(StarDiJie)
	assert.True(t, ok)
	assert.Equal(t, BranchZi, b)

	_, ok = chart.Locate(StarPoJun)
	assert.False(t, ok)
}

func TestChart_PositionsAreCopies(t *testing.T) {
	chart := NewChart(sampleParts())

	positions := chart.Positions()
	positions[BranchZi].Unlucky[0] = StarDiKong
	assert.Equal(t, []Star{StarDiJie}, chart.At(BranchZi).Unlucky)
}

func TestChart_MarshalJSON(t *testing.T) {
	chart := NewChart(sampleParts())

	data, err := json.Marshal(chart)
	require.NoError(t, err)

	var decoded struct {
		Input      BirthInput     `json:"input"`
		SelfPalace Branch         `json:"self_palace"`
		Cycle      ElementalCycle `json:"cycle"`
		Positions  []Position     `json:"positions"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, chart.Input(), decoded.Input)
	assert.Equal(t, BranchYin, decoded.SelfPalace)
	assert.Equal(t, CycleWater, decoded.Cycle)
	require.Len(t, decoded.Positions, BranchCount)
	assert.Equal(t, PalaceSelf, decoded.Positions[BranchYin].Palace)
	assert.True(t, decoded.Positions[BranchChen].Body)
	assert.Contains(t, string(data), `"self_palace":"寅"`)
}
