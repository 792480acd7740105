package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpText = "space: pause, r: restart, left/right: seek, up/down: volume, q/esc: quit"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	session := m.machine.Session()
	lines := make([]string, m.height)
	centerY := m.height / 2
	maxWidth := m.width - 2

	// place centers a line at the given row, skipping anything that does
	// not fit the terminal.
	place := func(row int, s string) {
		if row < 0 || row >= m.height {
			return
		}
		if lipgloss.Width(s) >= maxWidth {
			return
		}
		lines[row] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	// The bar sizes itself down to the terminal, so it is always drawn.
	bar := renderProgressBar(session.Progress(), maxWidth, m.cfg.ProgressBarWidth)
	if bar != "" && centerY >= 0 && centerY < m.height {
		lines[centerY] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar)
	}

	info := fmt.Sprintf("tempo: %.2fx - volume: %3d%% - %s",
		session.Speed,
		roundVolume(m.machine.Volume(), m.cfg.VolumeIncrement),
		formatTime(session.Speed*session.Position()),
	)
	place(centerY-1, info)

	if m.title != "" {
		place(centerY-3, titleStyle.Render(m.title))
	}

	place(centerY+2, helpStyle.Render(helpText))

	return strings.Join(lines, "\n")
}

// formatTime renders whole seconds as h:mm:ss, or m:ss below an hour.
func formatTime(seconds float64) string {
	total := int(seconds)
	s := total % 60
	minutes := total / 60
	h := minutes / 60
	min := minutes % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, s)
	}
	return fmt.Sprintf("%d:%02d", min, s)
}

// roundVolume rounds a 0..1 level to the nearest increment in percent.
// The engine's log-scale volume does not round-trip exactly, so the
// displayed value snaps to the step the user actually dials in.
func roundVolume(level float64, incrementPercent int) int {
	if incrementPercent <= 0 {
		incrementPercent = 1
	}
	steps := level*100/float64(incrementPercent) + 0.5
	return int(steps) * incrementPercent
}
