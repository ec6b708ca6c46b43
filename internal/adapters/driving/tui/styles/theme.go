// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour, used for the selection.
	Primary lipgloss.Color

	// Secondary marks the self palace.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Lu, Quan, Ke and Ji colour the four transformation tags.
	Lu   lipgloss.Color
	Quan lipgloss.Color
	Ke   lipgloss.Color
	Ji   lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Lu:         lipgloss.Color("#A6E3A1"), // Green
		Quan:       lipgloss.Color("#FAB387"), // Peach
		Ke:         lipgloss.Color("#89B4FA"), // Blue
		Ji:         lipgloss.Color("#EBA0AC"), // Maroon
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Cell frames a chart position.
	Cell lipgloss.Style

	// SelectedCell frames the position under the cursor.
	SelectedCell lipgloss.Style

	// SelfCell frames the self palace when it is not selected.
	SelfCell lipgloss.Style

	// Centre frames the summary block in the middle of the ring.
	Centre lipgloss.Style

	// Palace renders palace names.
	Palace lipgloss.Style

	// PrimaryStar, LuckyStar and UnluckyStar render star names by family.
	PrimaryStar lipgloss.Style
	LuckyStar   lipgloss.Style
	UnluckyStar lipgloss.Style

	tags map[domain.TransformationTag]lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	cell := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Cell:         cell,
		SelectedCell: cell.BorderStyle(lipgloss.ThickBorder()).BorderForeground(theme.Primary),
		SelfCell:     cell.BorderForeground(theme.Secondary),
		Centre:       cell.Align(lipgloss.Center, lipgloss.Center),

		Palace: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		PrimaryStar: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		LuckyStar: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		UnluckyStar: lipgloss.NewStyle().
			Foreground(theme.Muted),

		tags: map[domain.TransformationTag]lipgloss.Style{
			domain.TagLu:   lipgloss.NewStyle().Bold(true).Foreground(theme.Lu),
			domain.TagQuan: lipgloss.NewStyle().Bold(true).Foreground(theme.Quan),
			domain.TagKe:   lipgloss.NewStyle().Bold(true).Foreground(theme.Ke),
			domain.TagJi:   lipgloss.NewStyle().Bold(true).Foreground(theme.Ji),
		},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Tag returns the style for a transformation tag. Unknown tags render as
// normal text.
func (s *Styles) Tag(tag domain.TransformationTag) lipgloss.Style {
	if style, ok := s.tags[tag]; ok {
		return style
	}
	return s.Normal
}
