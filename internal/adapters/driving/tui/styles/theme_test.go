package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_TagColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.Color]bool)
	for _, c := range []lipgloss.Color{theme.Lu, theme.Quan, theme.Ke, theme.Ji} {
		assert.False(t, seen[c], "duplicate colour: %s", c)
		seen[c] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	styles := DefaultStyles()

	assert.NotEqual(t, lipgloss.Style{}, styles.Title)
	assert.NotEqual(t, lipgloss.Style{}, styles.Subtitle)
	assert.NotEqual(t, lipgloss.Style{}, styles.Normal)
	assert.NotEqual(t, lipgloss.Style{}, styles.Muted)
	assert.NotEqual(t, lipgloss.Style{}, styles.Error)
	assert.NotEqual(t, lipgloss.Style{}, styles.StatusBar)
	assert.NotEqual(t, lipgloss.Style{}, styles.Cell)
	assert.NotEqual(t, lipgloss.Style{}, styles.SelectedCell)
	assert.NotEqual(t, lipgloss.Style{}, styles.SelfCell)
	assert.NotEqual(t, lipgloss.Style{}, styles.Centre)
	assert.NotEqual(t, lipgloss.Style{}, styles.PrimaryStar)
	assert.NotEqual(t, lipgloss.Style{}, styles.UnluckyStar)
}

func TestStyles_CellsHaveBorders(t *testing.T) {
	styles := DefaultStyles()

	for _, style := range []lipgloss.Style{styles.Cell, styles.SelectedCell, styles.SelfCell, styles.Centre} {
		assert.Equal(t, 2, style.GetHorizontalBorderSize())
		assert.Equal(t, 2, style.GetVerticalBorderSize())
	}
}

func TestStyles_Tag(t *testing.T) {
	styles := DefaultStyles()

	for _, tag := range domain.AllTransformationTags() {
		assert.NotEqual(t, styles.Normal, styles.Tag(tag), "tag %s", tag)
	}
	assert.Equal(t, styles.Normal, styles.Tag("?"))
}

func TestStyles_CanRenderText(t *testing.T) {
	styles := DefaultStyles()

	testCases := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Title", styles.Title},
		{"Normal", styles.Normal},
		{"Muted", styles.Muted},
		{"Palace", styles.Palace},
		{"LuckyStar", styles.LuckyStar},
		{"Help", styles.Help},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.style.Render("命宮")
			assert.Contains(t, result, "命宮")
		})
	}
}
