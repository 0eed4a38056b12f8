// Package tui runs arcade games in a terminal with Bubble Tea: the game loop,
// key bindings, menus, the scoreboard and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Gen identifies the loop that scheduled
// it so ticks left over from a previous game are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd schedules the next tick of loop gen at tickRate ticks per second.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
