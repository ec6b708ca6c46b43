package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/ziwei/internal/core/domain"
	"github.com/custodia-labs/ziwei/internal/core/natal"
)

func TestRenderChart_OneLinePerBranch(t *testing.T) {
	in, err := domain.ResolveBirthInput(2023, "", "2", 10, "1")
	assert.NoError(t, err)

	out := renderChart(natal.Build(in), false)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// Three header lines, a blank line, then twelve positions.
	assert.Len(t, lines, 4+domain.BranchCount)
	for i, b := range domain.AllBranches() {
		assert.True(t, strings.HasPrefix(lines[4+i], b.String()+" "), "line %d: %q", i, lines[4+i])
	}
}

func TestRenderChart_SingleBodyMarker(t *testing.T) {
	in, err := domain.ResolveBirthInput(1984, "", "11", 30, "23")
	assert.NoError(t, err)

	out := renderChart(natal.Build(in), true)

	assert.Equal(t, 1, strings.Count(out, " 身 "))
}

func TestJoinHelpers(t *testing.T) {
	assert.Equal(t, "-", joinPlaced(nil))
	assert.Equal(t, "-", joinStars(nil))
	assert.Equal(t, "紫微 破軍化祿", joinPlaced([]domain.PlacedStar{
		{Name: domain.StarZiWei},
		{Name: domain.StarPoJun, Tag: domain.TagLu},
	}))
	assert.Equal(t, "擎羊 陀羅", joinStars([]domain.Star{domain.StarQingYang, domain.StarTuoLuo}))
}

func TestPadRight_UsesDisplayWidth(t *testing.T) {
	assert.Equal(t, "命宮", padRight("命宮", 4))
	assert.Equal(t, "身  ", padRight("身", 4))
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "toolong", padRight("toolong", 3))
}

func TestColumnWidths(t *testing.T) {
	widths := columnWidths([][]string{
		{"子", "甲子", ""},
		{"子(鼠)", "乙丑", "身"},
	})

	assert.Equal(t, []int{6, 4, 2}, widths)
}

func TestBranchLabel(t *testing.T) {
	assert.Equal(t, "卯", branchLabel(domain.BranchMao, false))
	assert.Equal(t, "卯(兔)", branchLabel(domain.BranchMao, true))
}
