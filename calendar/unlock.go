package calendar

import (
	"os"
	"time"
)

// DefaultUnlockCutoff is the daily unlock time used when no override is configured
const DefaultUnlockCutoff = "00:01"

// EnvUnlockCutoff overrides the daily unlock time, formatted HH:MM
const EnvUnlockCutoff = "DAILY_UNLOCK_CUTOFF"

// UnlockCutoff returns the configured daily unlock time of day
func UnlockCutoff() (hour int, minute int) {
	s := os.Getenv(EnvUnlockCutoff)
	if s == "" {
		s = DefaultUnlockCutoff
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, _ = time.Parse("15:04", DefaultUnlockCutoff)
	}
	return t.Hour(), t.Minute()
}

// Unlocked reports whether the daily unlock has occurred for the day of
// the given clock reading. Before the cutoff a reservation dated today
// still blocks new bookings.
func Unlocked(now time.Time) bool {
	hour, minute := UnlockCutoff()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	return !now.Before(cutoff)
}
