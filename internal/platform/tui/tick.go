// Package tui hosts Dungeon Slimes in a terminal using Bubble Tea.
// It handles the frame loop, input mapping, and drawing into a cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into frame deltas in seconds.
type frameClock struct {
	last     time.Time
	fallback float64
}

func newFrameClock(tickRate int) frameClock {
	return frameClock{fallback: 1 / float64(tickRate)}
}

// Delta returns the seconds elapsed since the previous tick. The first tick
// reports one nominal frame.
func (c *frameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() || !now.After(c.last) {
		c.last = now
		return c.fallback
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
