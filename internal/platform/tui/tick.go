// Package tui is the terminal front end for tile-merge: a Bubble Tea board
// that drives a session.Session, and a scoreboard over the game history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is the animation rate in ticks per second.
const DefaultTickRate = 20

// TickMsg is sent to advance highlight fading.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
