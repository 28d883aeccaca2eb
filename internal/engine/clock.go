package engine

import "time"

// Clock abstracts wall-clock reads so scheduling and date-rollover logic can
// be driven by a fixed time in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// DateKey formats a time as the calendar-date key (YYYY-MM-DD) used for
// "today" comparisons throughout the engine.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func sameDay(t time.Time, now time.Time) bool {
	return DateKey(t) == DateKey(now)
}
