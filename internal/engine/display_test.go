package engine

import (
	"testing"
	"time"
)

func TestFormatCountdown(t *testing.T) {
	now := testDay
	cases := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"past", now.Add(-time.Minute), "Now"},
		{"exactly now", now, "Now"},
		{"seconds only", now.Add(42 * time.Second), "42s"},
		{"minutes and seconds", now.Add(5*time.Minute + 3*time.Second), "5m 3s"},
		{"whole minutes", now.Add(10 * time.Minute), "10m 0s"},
		{"hours and minutes", now.Add(2*time.Hour + 15*time.Minute), "2h 15m"},
		{"hours drop seconds", now.Add(time.Hour + 59*time.Second), "1h 0m"},
		{"more than a day", now.Add(26 * time.Hour), "26h 0m"},
	}
	for _, tc := range cases {
		if got := FormatCountdown(tc.target, now); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
