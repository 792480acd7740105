package ui

import (
	"math"
	"strings"
)

// renderProgressBar renders a fixed-width bracketed bar.
// Format: [=====     ]
func renderProgressBar(progress float64, maxWidth, barWidth int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	bars := min(maxWidth-2, barWidth)
	if bars < 1 {
		return ""
	}
	filled := int(math.Round(progress * float64(bars)))

	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", bars-filled) + "]"
}
