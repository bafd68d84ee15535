package experiment

import "time"

// TimerKind distinguishes the two repeating timers.
type TimerKind int

const (
	// DwellTimer advances the memorized word.
	DwellTimer TimerKind = iota + 1
	// CountdownTimer decrements the remaining answer time.
	CountdownTimer
)

func (k TimerKind) String() string {
	switch k {
	case DwellTimer:
		return "dwell"
	case CountdownTimer:
		return "countdown"
	default:
		return "none"
	}
}

// TimerHandle identifies one armed repeating timer. The UI schedules a tick
// carrying the handle every Every; the controller ignores ticks whose
// handle is no longer armed, which is how a timer is cancelled.
type TimerHandle struct {
	Kind  TimerKind
	ID    uint64
	Every time.Duration
}

// IsZero reports whether h names no timer.
func (h TimerHandle) IsZero() bool {
	return h.ID == 0
}
