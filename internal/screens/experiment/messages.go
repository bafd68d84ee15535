package experiment

import (
	"time"

	tea "charm.land/bubbletea/v2"

	exp "github.com/abhisek/wordrecog/internal/experiment"
)

// timerTickMsg is one firing of a controller timer. The handle lets the
// controller drop ticks from timers it has since disarmed.
type timerTickMsg struct {
	Handle exp.TimerHandle
}

// tickCmd schedules the next firing of h. A zero handle schedules nothing.
func tickCmd(h exp.TimerHandle) tea.Cmd {
	if h.IsZero() {
		return nil
	}
	return tea.Tick(h.Every, func(time.Time) tea.Msg {
		return timerTickMsg{Handle: h}
	})
}
