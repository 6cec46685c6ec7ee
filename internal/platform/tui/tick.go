// Package tui provides the Bubble Tea front end for the crawler. The game
// advances only on key presses; timers exist only to expire flash messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a flash message stays in the footer.
const flashDuration = 2 * time.Second

// FlashExpiredMsg clears the flash message with the matching ID. Newer
// flashes carry newer IDs, so a stale timer never clears them.
type FlashExpiredMsg struct {
	ID int
}

// flashCmd returns a command that expires flash id after d.
func flashCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FlashExpiredMsg{ID: id}
	})
}
