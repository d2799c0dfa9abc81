package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Series colors, shared by the terminal and PNG backends.
const (
	ColorTechnical = "#78350F"
	ColorMarketing = "#D97706"
	colorEmpty     = "#928374"
)

// Cutout is the fraction of the radius left hollow in the middle.
const Cutout = 0.6

// DefaultRows is the doughnut height in terminal rows.
const DefaultRows = 9

var (
	styleTechnical = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTechnical))
	styleMarketing = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMarketing))
	styleEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorEmpty))
)

const (
	ringBlock  = "█"
	emptyBlock = "░"
)

// Doughnut is a terminal Adapter. Each handle keeps its latest counts and
// is drawn on demand with Render.
type Doughnut struct {
	reg  registry
	rows int
}

// NewDoughnut creates a terminal doughnut adapter drawing rows lines high.
// Values below 3 fall back to DefaultRows.
func NewDoughnut(rows int) *Doughnut {
	if rows < 3 {
		rows = DefaultRows
	}
	return &Doughnut{reg: newRegistry(), rows: rows}
}

func (d *Doughnut) Initialize(technical, marketing int) (Handle, error) {
	return d.reg.initialize(technical, marketing)
}

func (d *Doughnut) Update(h Handle, technical, marketing int) error {
	return d.reg.update(h, technical, marketing)
}

// Counts returns the latest counts drawn for h.
func (d *Doughnut) Counts(h Handle) (Counts, error) {
	return d.reg.counts(h)
}

// Render draws the doughnut for h followed by its legend.
func (d *Doughnut) Render(h Handle) (string, error) {
	c, err := d.reg.counts(h)
	if err != nil {
		return "", err
	}
	return RenderDoughnut(c, d.rows) + "\n" + Legend(c), nil
}

// RenderDoughnut draws a ring rows lines high. The technical arc starts at
// twelve o'clock and runs clockwise; marketing fills the rest. Terminal
// cells are about twice as tall as wide, so each row spans two columns per
// unit of radius.
func RenderDoughnut(c Counts, rows int) string {
	if rows < 3 {
		rows = DefaultRows
	}
	cols := rows * 2
	share := c.TechnicalShare()
	empty := c.Total() == 0

	lines := make([]string, 0, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			dy := (float64(y) + 0.5 - float64(rows)/2) / (float64(rows) / 2)
			dx := (float64(x) + 0.5 - float64(cols)/2) / (float64(cols) / 2)
			r := math.Hypot(dx, dy)
			switch {
			case r > 1 || r < Cutout:
				b.WriteString(" ")
			case empty:
				b.WriteString(styleEmpty.Render(emptyBlock))
			case clockwiseFraction(dx, dy) < share:
				b.WriteString(styleTechnical.Render(ringBlock))
			default:
				b.WriteString(styleMarketing.Render(ringBlock))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// clockwiseFraction maps a point to its angle measured clockwise from twelve
// o'clock, as a fraction of a full turn in [0, 1).
func clockwiseFraction(dx, dy float64) float64 {
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle / (2 * math.Pi)
}

// Legend renders one line per series, e.g. "█ Técnicas: 3 tareas".
func Legend(c Counts) string {
	return styleTechnical.Render(ringBlock) + " " + fmt.Sprintf("%s: %d tareas", LabelTechnical, c.Technical) + "\n" +
		styleMarketing.Render(ringBlock) + " " + fmt.Sprintf("%s: %d tareas", LabelMarketing, c.Marketing)
}
