// Package tui provides the Bubble Tea integration for the tower game.
// It handles the terminal UI loop, input mapping and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger a render frame. The simulation runs at
// its own fixed rate; each frame converts the elapsed wall-clock time
// into however many simulation ticks are due.
type FrameMsg time.Time

// frameInterval is the render rate, deliberately faster than the
// simulation tick so soft-scroll interpolation has frames to fill.
const frameInterval = time.Second / 60

// frameCmd returns a Bubble Tea command that sends the next frame message.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
