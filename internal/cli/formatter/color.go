package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/launchweek/internal/chart"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired base palette with the amber chart series on top.
var (
	ColorTechnical = lipgloss.Color(chart.ColorTechnical)
	ColorMarketing = lipgloss.Color(chart.ColorMarketing)
	ColorAmber     = lipgloss.Color("#fabd2f")
	ColorRed       = lipgloss.Color("#fb4934")
	ColorDim       = lipgloss.Color("#928374")
	ColorFg        = lipgloss.Color("#ebdbb2")
	ColorHeader    = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleTechnical = lipgloss.NewStyle().Foreground(ColorTechnical)
	StyleMarketing = lipgloss.NewStyle().Foreground(ColorMarketing)
	StyleAmber     = lipgloss.NewStyle().Foreground(ColorAmber)
	StyleRed       = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim       = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg        = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold      = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Error renders an error line.
func Error(err error) string {
	return StyleRed.Render("✖ " + err.Error())
}
