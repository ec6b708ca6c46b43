package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ziwei/internal/core/domain"
)

type renderOptions struct {
	format      domain.OutputFormat
	showAnimals bool
}

const emptyCell = "-"

// renderChart formats a chart as text: a summary header followed by one
// line per branch from 子 to 亥.
//
//	癸卯年 卯月 10日 丑時
//	命宮 丑  身宮 亥  金四局  紫微 亥
//	四化 破軍化祿 巨門化權 太陰化科 貪狼化忌
//
//	子 甲子 遷移     破軍 | 左輔 | 擎羊
func renderChart(chart *domain.Chart, showAnimals bool) string {
	var b strings.Builder

	in := chart.Input()
	fmt.Fprintf(&b, "%s年 %s月 %d日 %s時\n", in.Pillar(), in.Month, in.Day, in.Hour)
	fmt.Fprintf(&b, "命宮 %s  身宮 %s  %s  紫微 %s\n",
		chart.SelfPalace(), chart.BodyPalace(), chart.Cycle(), chart.Anchor())

	tags := make([]string, 0, 4)
	for _, t := range chart.Transformations() {
		tags = append(tags, string(t.Star)+"化"+t.Tag.String())
	}
	fmt.Fprintf(&b, "四化 %s\n\n", strings.Join(tags, " "))

	positions := chart.Positions()
	rows := make([][]string, len(positions))
	for i, pos := range positions {
		rows[i] = []string{
			branchLabel(pos.Branch, showAnimals),
			pos.Stem.String() + pos.Branch.String(),
			pos.Palace.String(),
			bodyMarker(pos.Body),
		}
	}
	widths := columnWidths(rows)

	for i, pos := range positions {
		cells := make([]string, len(rows[i]))
		for j, cell := range rows[i] {
			cells[j] = padRight(cell, widths[j])
		}
		fmt.Fprintf(&b, "%s  %s | %s | %s\n",
			strings.Join(cells, " "),
			joinPlaced(pos.Primary),
			joinPlaced(pos.Lucky),
			joinStars(pos.Unlucky),
		)
	}
	return b.String()
}

func branchLabel(b domain.Branch, showAnimals bool) string {
	if showAnimals {
		return b.String() + "(" + b.Animal() + ")"
	}
	return b.String()
}

func bodyMarker(body bool) string {
	if body {
		return "身"
	}
	return ""
}

func joinPlaced(stars []domain.PlacedStar) string {
	if len(stars) == 0 {
		return emptyCell
	}
	names := make([]string, len(stars))
	for i, s := range stars {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}

func joinStars(stars []domain.Star) string {
	if len(stars) == 0 {
		return emptyCell
	}
	names := make([]string, len(stars))
	for i, s := range stars {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}

// columnWidths returns the display width of the widest cell per column.
// CJK characters occupy two terminal cells.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for j, cell := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
