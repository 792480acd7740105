package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.InterruptMsg:
		// An interrupt signal is a quit request, not a crash.
		m.machine.Stop()
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.machine.Stop()
			return m, tea.Quit

		case " ":
			m.machine.TogglePause()

		case "r":
			m.machine.Restart()

		case "left":
			m.machine.SeekBy(-m.cfg.SeekDistance)

		case "right":
			m.machine.SeekBy(m.cfg.SeekDistance)

		case "up":
			m.machine.AdjustVolume(m.cfg.VolumeIncrement)

		case "down":
			m.machine.AdjustVolume(-m.cfg.VolumeIncrement)
		}

	case tickMsg:
		// Loop wrap must be checked right after the elapsed refresh so a
		// just-finished track restarts without a visible stall.
		m.machine.Tick()
		m.machine.ApplyLoop()
		return m, tickCmd()
	}

	return m, nil
}
