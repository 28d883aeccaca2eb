package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseSlot validates an HH:MM (24h) time-of-day string and returns the
// hour and minute components.
func ParseSlot(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid check-in time %q (want HH:MM): %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NewSchedule builds a completed schedule from slot strings, deduplicating
// and sorting the slots. At least one slot is required.
func NewSchedule(times []string, graceMinutes, reminderMinutes int, notify bool) (*CheckInSchedule, error) {
	seen := map[string]bool{}
	var slots []string
	for _, s := range times {
		s = strings.TrimSpace(s)
		if _, _, err := ParseSlot(s); err != nil {
			return nil, err
		}
		if !seen[s] {
			seen[s] = true
			slots = append(slots, s)
		}
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("schedule needs at least one check-in time")
	}
	sort.Strings(slots)

	if graceMinutes < 0 {
		graceMinutes = 0
	}
	if reminderMinutes < 0 {
		reminderMinutes = 0
	}

	return &CheckInSchedule{
		Times:                 slots,
		GracePeriodMinutes:    graceMinutes,
		ReminderMinutesBefore: reminderMinutes,
		NotificationsEnabled:  notify,
		SetupCompleted:        true,
	}, nil
}

// slotOn places an HH:MM slot on the calendar date of ref.
func slotOn(ref time.Time, slot string) time.Time {
	hour, minute, _ := ParseSlot(slot)
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
}

// NextScheduledTime returns the next check-in slot relative to now. A slot
// stays current until its grace deadline has fully elapsed; a slot exactly
// at its deadline counts as elapsed. When every slot of today is past its
// deadline, the first slot of tomorrow is returned. Nil when no completed
// schedule exists.
func (c *CheckInState) NextScheduledTime(now time.Time) *time.Time {
	if c.Schedule == nil || !c.Schedule.SetupCompleted || len(c.Schedule.Times) == 0 {
		return nil
	}

	slots := make([]time.Time, 0, len(c.Schedule.Times))
	for _, s := range c.Schedule.Times {
		slots = append(slots, slotOn(now, s))
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })

	grace := time.Duration(c.Schedule.GracePeriodMinutes) * time.Minute
	for _, slot := range slots {
		if slot.Add(grace).After(now) {
			s := slot
			return &s
		}
	}

	next := slotOn(now.AddDate(0, 0, 1), c.Schedule.Times[0])
	return &next
}

// CurrentSlot returns the slot whose window (slot through grace deadline)
// contains now, or nil when no slot is currently open.
func (c *CheckInState) CurrentSlot(now time.Time) *time.Time {
	next := c.NextScheduledTime(now)
	if next == nil || next.After(now) {
		return nil
	}
	return next
}

// AddRecord appends a check-in record to the log, assigning a unique id and
// creation timestamp. Prior entries are never touched.
func (c *CheckInState) AddRecord(rec CheckInRecord, now time.Time) CheckInRecord {
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	c.Records = append(c.Records, rec)
	return rec
}

// HasCompletedToday reports whether any record was completed on the
// calendar date of now.
func (c *CheckInState) HasCompletedToday(now time.Time) bool {
	for i := range c.Records {
		done := c.Records[i].CompletedAt
		if done != nil && sameDay(*done, now) {
			return true
		}
	}
	return false
}

// TodayRecords returns records scheduled or completed on the calendar date
// of now.
func (c *CheckInState) TodayRecords(now time.Time) []CheckInRecord {
	var out []CheckInRecord
	for i := range c.Records {
		r := c.Records[i]
		if sameDay(r.ScheduledTime, now) || (r.CompletedAt != nil && sameDay(*r.CompletedAt, now)) {
			out = append(out, r)
		}
	}
	return out
}

// MissedRecords returns records marked missed that were never completed.
func (c *CheckInState) MissedRecords() []CheckInRecord {
	var out []CheckInRecord
	for i := range c.Records {
		if c.Records[i].Missed && c.Records[i].CompletedAt == nil {
			out = append(out, c.Records[i])
		}
	}
	return out
}
