// Package ui renders the playback session and routes keypresses to the
// transport machine. It is a bubbletea program: key and tick messages are
// serialized through Update, so the machine has exactly one mutator.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tempo/internal/config"
	"github.com/llehouerou/tempo/internal/transport"
)

// tickInterval is the transport poll and redraw cadence. The displayed
// position and loop-wrap latency are bounded by one tick.
const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

// Model is the interactive player view.
type Model struct {
	machine *transport.Machine
	cfg     *config.Config
	title   string

	width  int
	height int
}

// New creates the player view for a running machine. title may be empty.
func New(machine *transport.Machine, cfg *config.Config, title string) Model {
	return Model{
		machine: machine,
		cfg:     cfg,
		title:   title,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
