// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per animation frame with the frame's wall time.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that schedules the next frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// maxFrameDelta caps a single measured delta, so a suspended terminal
// does not deliver minutes of simulation in one frame.
const maxFrameDelta = 250 * time.Millisecond

// frameDelta returns the elapsed time between two frames, clamped to
// [0, maxFrameDelta]. A zero previous time yields zero.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	return min(max(now.Sub(prev), 0), maxFrameDelta)
}
