package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/circuit"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey   = lipgloss.NewStyle().Foreground(colorGray).Width(18)
	styleValue = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarn  = lipgloss.NewStyle().Foreground(colorYellow)
	styleError = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

var styleBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorDim).
	Padding(0, 1)

// renderReport formats the design analysis the way the importer logs it.
func renderReport(name string, c *circuit.Circuit, s circuit.Stats) string {
	rows := [][2]string{
		{"total cells", fmt.Sprint(s.TotalCells)},
		{"multi cells", fmt.Sprint(s.MultiCells)},
		{"fixed cells", fmt.Sprint(s.FixedCells)},
		{"groups", fmt.Sprint(len(c.Groups))},
		{"rows", fmt.Sprint(len(c.Rows))},
		{"row height", fmt.Sprintf("%g", c.RowHeight)},
		{"site width", fmt.Sprint(c.WSite)},
		{"max cell height", fmt.Sprintf("%d rows", s.MaxCellHeight)},
		{"design area", fmt.Sprintf("%.0f", s.DesignArea)},
		{"fixed area", fmt.Sprintf("%.0f", s.TotalFixedArea)},
		{"movable area", fmt.Sprintf("%.0f", s.TotalMovableArea)},
		{"utilization", utilization(c, s)},
		{"displacement", fmt.Sprintf("%g (%g rows)", c.Limits.Displacement, c.Limits.MaxDispConst)},
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(name))
	for _, r := range rows {
		b.WriteString("\n" + styleKey.Render(r[0]) + styleValue.Render(r[1]))
	}
	return styleBox.Render(b.String())
}

func utilization(c *circuit.Circuit, s circuit.Stats) string {
	text := fmt.Sprintf("%.2f%%", s.DesignUtil*100)
	if s.DesignUtil*100 > c.Limits.MaxUtilization {
		return styleWarn.Render(fmt.Sprintf("%s (max %g%%)", text, c.Limits.MaxUtilization))
	}
	return text
}
