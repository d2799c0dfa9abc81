package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column.
type Column struct {
	Title string
	Right bool // right-align cells, for counts
}

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible characters so styled cells line up.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(cols) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	writeRow(&b, cols, widths, titles, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(&b, cols, widths, row, nil)
	}
	return b.String()
}

// writeRow pads cells to widths; render, when set, styles each cell after
// its visible width has been measured.
func writeRow(b *strings.Builder, cols []Column, widths []int, cells []string, render func(string) string) {
	for i := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := max(widths[i]-lipgloss.Width(cell), 0)
		rendered := cell
		if render != nil {
			rendered = render(cell)
		}

		if cols[i].Right {
			b.WriteString(strings.Repeat(" ", pad) + rendered)
		} else {
			b.WriteString(rendered)
			if i < len(cols)-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		if i < len(cols)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
