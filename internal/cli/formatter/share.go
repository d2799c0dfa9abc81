package formatter

import (
	"fmt"
	"strings"
)

const (
	technicalBlock = "█"
	marketingBlock = "▒"
	emptyBlock     = "░"
)

// RenderShareBar renders a two-color bar like ██████▒▒ 75% where the
// technical share is drawn first and marketing fills the rest.
// An empty day renders as a dim bar with "--".
func RenderShareBar(technical, marketing, width int) string {
	if width < 2 {
		width = 2
	}
	total := technical + marketing
	if total <= 0 {
		return StyleDim.Render(strings.Repeat(emptyBlock, width)) + "  --"
	}

	pct := float64(technical) / float64(total)
	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	bar := StyleTechnical.Render(strings.Repeat(technicalBlock, filled)) +
		StyleMarketing.Render(strings.Repeat(marketingBlock, width-filled))
	return fmt.Sprintf("%s %3.0f%%", bar, pct*100)
}
