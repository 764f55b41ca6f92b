package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderRate renders a 0-100 rate as a bar like [████░░░░]  45%.
// Colouring follows the scalar bands: green from 70, yellow from 40.
func RenderRate(rate float64, width int) string {
	rate = min(max(rate, 0), 100)
	width = max(width, 2)

	filled := min(int(rate/100*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case rate < 40:
		style = StyleRed
	case rate < 70:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), rate)
}
