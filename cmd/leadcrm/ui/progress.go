package ui

import (
	"fmt"
	"strings"
)

// RenderProgress draws a progress bar for an achievement percentage.
// The bar fill never exceeds its width, but the label always shows the
// real percentage so over-achievement stays visible.
func RenderProgress(percent float64, width int, styles Styles) string {
	if width < 10 {
		width = 10
	}
	barWidth := width - 9 // room for " 12345.6%"

	fill := percent
	if fill > 100 {
		fill = 100
	}
	if fill < 0 {
		fill = 0
	}
	filled := int(fill / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	bar := styles.ProgressBar.Render(strings.Repeat("█", filled)) +
		styles.Muted.Render(strings.Repeat("░", barWidth-filled))

	label := fmt.Sprintf("%6.1f%%", percent)
	if percent > 100 {
		label = styles.Success.Render(label)
	} else {
		label = styles.Body.Render(label)
	}

	return bar + " " + label
}
