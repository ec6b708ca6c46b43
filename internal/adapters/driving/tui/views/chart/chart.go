// Package chart provides the natal chart view for the TUI.
//
// The twelve positions are laid out as the traditional square ring with 巳
// in the top-left corner and 亥 in the bottom-right; the four centre cells
// merge into a summary block.
package chart

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// Cell content size, excluding borders.
const (
	CellWidth  = 16
	CellHeight = 5
)

type cell struct{ row, col int }

// ring maps each branch to its grid cell.
var ring = [domain.BranchCount]cell{
	domain.BranchZi:   {3, 2},
	domain.BranchChou: {3, 1},
	domain.BranchYin:  {3, 0},
	domain.BranchMao:  {2, 0},
	domain.BranchChen: {1, 0},
	domain.BranchSi:   {0, 0},
	domain.BranchWu:   {0, 1},
	domain.BranchWei:  {0, 2},
	domain.BranchShen: {0, 3},
	domain.BranchYou:  {1, 3},
	domain.BranchXu:   {2, 3},
	domain.BranchHai:  {3, 3},
}

func isCentre(c cell) bool {
	return c.row >= 1 && c.row <= 2 && c.col >= 1 && c.col <= 2
}

func branchAt(c cell) (domain.Branch, bool) {
	for b, rc := range ring {
		if rc == c {
			return domain.Branch(b), true
		}
	}
	return 0, false
}

// View renders a chart and tracks the selected position.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	chart    *domain.Chart
	label    string
	selected domain.Branch

	// nextTag indexes the transformation the Transform key visits next.
	nextTag int
}

// NewView creates a new chart view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km}
}

// SetChart replaces the displayed chart and moves the selection to 命宮.
func (v *View) SetChart(chart *domain.Chart, label string) {
	v.chart = chart
	v.label = label
	v.nextTag = 0
	if chart != nil {
		v.selected = chart.SelfPalace()
	}
}

// Chart returns the displayed chart, or nil.
func (v *View) Chart() *domain.Chart {
	return v.chart
}

// Selected returns the branch under the cursor.
func (v *View) Selected() domain.Branch {
	return v.selected
}

// Select moves the cursor to b.
func (v *View) Select(b domain.Branch) {
	if b.IsValid() {
		v.selected = b
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles selection keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.chart == nil {
		return v, nil
	}

	before := v.selected
	k := keyMsg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		v.move(-1, 0)
	case keymap.Matches(k, v.keymap.Down):
		v.move(1, 0)
	case keymap.Matches(k, v.keymap.Left):
		v.move(0, -1)
	case keymap.Matches(k, v.keymap.Right):
		v.move(0, 1)
	case keymap.Matches(k, v.keymap.Next):
		v.selected = v.selected.Add(1)
	case keymap.Matches(k, v.keymap.Prev):
		v.selected = v.selected.Add(-1)
	case keymap.Matches(k, v.keymap.Self):
		v.selected = v.chart.SelfPalace()
	case keymap.Matches(k, v.keymap.Body):
		v.selected = v.chart.BodyPalace()
	case keymap.Matches(k, v.keymap.Transform):
		v.stepTransformation()
	}

	if v.selected == before {
		return v, nil
	}
	selected := v.selected
	return v, func() tea.Msg { return messages.SelectionChanged{Branch: selected} }
}

// stepTransformation selects the branch holding the next transformed star.
func (v *View) stepTransformation() {
	t := v.chart.Transformations()[v.nextTag]
	v.nextTag = (v.nextTag + 1) % len(domain.AllTransformationTags())
	if b, ok := v.chart.Locate(t.Star); ok {
		v.selected = b
	}
}

// move steps across the grid. A step into the centre jumps to the cell on
// the far side; a step off the grid is ignored.
func (v *View) move(dr, dc int) {
	next := cell{ring[v.selected].row + dr, ring[v.selected].col + dc}
	if isCentre(next) {
		next = cell{next.row + 2*dr, next.col + 2*dc}
	}
	if b, ok := branchAt(next); ok {
		v.selected = b
	}
}

// View renders the ring followed by the detail panel for the selection.
func (v *View) View() string {
	if v.chart == nil {
		return ""
	}

	cells := make(map[cell]string, domain.BranchCount)
	for _, pos := range v.chart.Positions() {
		cells[ring[pos.Branch]] = v.renderCell(pos)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, cells[cell{0, 0}], cells[cell{0, 1}], cells[cell{0, 2}], cells[cell{0, 3}])
	left := lipgloss.JoinVertical(lipgloss.Left, cells[cell{1, 0}], cells[cell{2, 0}])
	right := lipgloss.JoinVertical(lipgloss.Left, cells[cell{1, 3}], cells[cell{2, 3}])
	middle := lipgloss.JoinHorizontal(lipgloss.Top, left, v.renderCentre(), right)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cells[cell{3, 0}], cells[cell{3, 1}], cells[cell{3, 2}], cells[cell{3, 3}])

	grid := lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
	return lipgloss.JoinVertical(lipgloss.Left, grid, "", v.renderDetail())
}

func (v *View) renderCell(pos domain.Position) string {
	header := pos.Stem.String() + pos.Branch.String() + " " + v.styles.Palace.Render(pos.Palace.String())
	if pos.Body {
		header += " " + v.styles.Subtitle.Render("身")
	}

	words := v.starWords(pos)
	lines := append([]string{header}, wrap(words, CellWidth)...)
	if len(lines) > CellHeight {
		lines = append(lines[:CellHeight-1], v.styles.Muted.Render("…"))
	}

	frame := v.styles.Cell
	switch pos.Branch {
	case v.selected:
		frame = v.styles.SelectedCell
	case v.chart.SelfPalace():
		frame = v.styles.SelfCell
	}
	return frame.Width(CellWidth).Height(CellHeight).Render(strings.Join(lines, "\n"))
}

func (v *View) starWords(pos domain.Position) []string {
	words := make([]string, 0, len(pos.Primary)+len(pos.Lucky)+len(pos.Unlucky))
	for _, s := range pos.Primary {
		words = append(words, v.placed(s, v.styles.PrimaryStar))
	}
	for _, s := range pos.Lucky {
		words = append(words, v.placed(s, v.styles.LuckyStar))
	}
	for _, s := range pos.Unlucky {
		words = append(words, v.styles.UnluckyStar.Render(s.String()))
	}
	return words
}

func (v *View) placed(s domain.PlacedStar, base lipgloss.Style) string {
	name := base.Render(s.Name.String())
	if !s.Tagged() {
		return name
	}
	return name + v.styles.Tag(s.Tag).Render("化"+s.Tag.String())
}

func (v *View) renderCentre() string {
	c := v.chart
	in := c.Input()

	tags := make([]string, 0, 4)
	for _, t := range c.Transformations() {
		tags = append(tags, t.Star.String()+v.styles.Tag(t.Tag).Render("化"+t.Tag.String()))
	}

	lines := []string{
		v.styles.Title.Render(fmt.Sprintf("%s年 %s月 %d日 %s時", in.Pillar(), in.Month, in.Day, in.Hour)),
	}
	if v.label != "" {
		lines = append(lines, v.styles.Muted.Render(v.label))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("命宮 %s  身宮 %s", c.SelfPalace(), c.BodyPalace()),
		fmt.Sprintf("%s  紫微 %s", c.Cycle(), c.Anchor()),
		"",
		strings.Join(tags[:2], " "),
		strings.Join(tags[2:], " "),
	)

	// The centre spans two cells in each direction, including the borders
	// between them.
	width := 2*CellWidth + 2
	height := 2*CellHeight + 2
	return v.styles.Centre.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (v *View) renderDetail() string {
	pos := v.chart.At(v.selected)

	title := fmt.Sprintf("%s%s %s", pos.Stem, pos.Branch, pos.Palace)
	if pos.Body {
		title += " (身宮)"
	}

	primary := make([]string, len(pos.Primary))
	for i, s := range pos.Primary {
		primary[i] = v.placed(s, v.styles.PrimaryStar)
	}
	lucky := make([]string, len(pos.Lucky))
	for i, s := range pos.Lucky {
		lucky[i] = v.placed(s, v.styles.LuckyStar)
	}
	unlucky := make([]string, len(pos.Unlucky))
	for i, s := range pos.Unlucky {
		unlucky[i] = v.styles.UnluckyStar.Render(s.String())
	}

	return strings.Join([]string{
		v.styles.Title.Render(title),
		"主星 " + orDash(primary, v.styles),
		"吉星 " + orDash(lucky, v.styles),
		"煞星 " + orDash(unlucky, v.styles),
	}, "\n")
}

func orDash(words []string, s *styles.Styles) string {
	if len(words) == 0 {
		return s.Muted.Render("-")
	}
	return strings.Join(words, " ")
}

// wrap packs rendered words into lines no wider than width cells.
func wrap(words []string, width int) []string {
	var lines []string
	var line string
	for _, w := range words {
		switch {
		case line == "":
			line = w
		case lipgloss.Width(line)+1+lipgloss.Width(w) <= width:
			line += " " + w
		default:
			lines = append(lines, line)
			line = w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
