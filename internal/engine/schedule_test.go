package engine

import (
	"testing"
	"time"
)

func scheduleFixture(t *testing.T, times []string, grace int) *CheckInState {
	t.Helper()
	sched, err := NewSchedule(times, grace, 10, true)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	return &CheckInState{Schedule: sched}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC)
}

func TestNextScheduledTimeBeforeFirstSlot(t *testing.T) {
	c := scheduleFixture(t, []string{"18:00", "09:00"}, 60)

	next := c.NextScheduledTime(at(8, 0))
	if next == nil {
		t.Fatalf("expected a next slot")
	}
	if !next.Equal(at(9, 0)) {
		t.Fatalf("next=%v, want today 09:00", next)
	}
}

func TestNextScheduledTimeWithinGrace(t *testing.T) {
	c := scheduleFixture(t, []string{"09:00", "18:00"}, 60)

	// 09:30 is inside the 09:00 grace window, so 09:00 is still current.
	next := c.NextScheduledTime(at(9, 30))
	if next == nil || !next.Equal(at(9, 0)) {
		t.Fatalf("next=%v, want today 09:00 (inside grace)", next)
	}

	// 10:00 is exactly the deadline; the slot has elapsed.
	next = c.NextScheduledTime(at(10, 0))
	if next == nil || !next.Equal(at(18, 0)) {
		t.Fatalf("next=%v, want today 18:00 (deadline boundary elapsed)", next)
	}
}

func TestNextScheduledTimeRollsToTomorrow(t *testing.T) {
	c := scheduleFixture(t, []string{"09:00", "18:00"}, 60)

	next := c.NextScheduledTime(at(19, 30))
	if next == nil {
		t.Fatalf("expected a next slot")
	}
	want := at(9, 0).AddDate(0, 0, 1)
	if !next.Equal(want) {
		t.Fatalf("next=%v, want tomorrow 09:00", next)
	}
}

func TestNextScheduledTimeNearMidnight(t *testing.T) {
	c := scheduleFixture(t, []string{"23:30"}, 60)

	// 23:45: the 23:30 slot's deadline (00:30 next day) is still pending.
	next := c.NextScheduledTime(at(23, 45))
	if next == nil || !next.Equal(at(23, 30)) {
		t.Fatalf("next=%v, want today 23:30 (grace crosses midnight)", next)
	}
}

func TestNextScheduledTimeNoSchedule(t *testing.T) {
	var c CheckInState
	if got := c.NextScheduledTime(at(8, 0)); got != nil {
		t.Fatalf("next=%v, want nil without schedule", got)
	}

	c.Schedule = &CheckInSchedule{Times: []string{"09:00"}}
	if got := c.NextScheduledTime(at(8, 0)); got != nil {
		t.Fatalf("next=%v, want nil while setup incomplete", got)
	}
}

func TestNewScheduleValidation(t *testing.T) {
	if _, err := NewSchedule(nil, 60, 10, true); err == nil {
		t.Fatalf("expected error for empty times")
	}
	if _, err := NewSchedule([]string{"25:00"}, 60, 10, true); err == nil {
		t.Fatalf("expected error for invalid time")
	}

	sched, err := NewSchedule([]string{"18:00", "09:00", "09:00"}, -5, -1, false)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	if len(sched.Times) != 2 || sched.Times[0] != "09:00" || sched.Times[1] != "18:00" {
		t.Fatalf("times=%v, want deduped sorted [09:00 18:00]", sched.Times)
	}
	if sched.GracePeriodMinutes != 0 || sched.ReminderMinutesBefore != 0 {
		t.Fatalf("negative minutes not floored: %+v", sched)
	}
	if !sched.SetupCompleted {
		t.Fatalf("setupCompleted not set")
	}
}

func TestAddRecordAppendOnly(t *testing.T) {
	var c CheckInState
	now := at(9, 5)

	done := now
	rec := c.AddRecord(CheckInRecord{ScheduledTime: at(9, 0), CompletedAt: &done, XPReward: CheckInXP}, now)
	if rec.ID == "" {
		t.Fatalf("record id not assigned")
	}
	if !rec.CreatedAt.Equal(now) {
		t.Fatalf("createdAt=%v, want %v", rec.CreatedAt, now)
	}

	c.AddRecord(CheckInRecord{ScheduledTime: at(18, 0), Missed: true}, at(19, 0))
	if len(c.Records) != 2 {
		t.Fatalf("len(records)=%d, want 2", len(c.Records))
	}
	if c.Records[0].ID != rec.ID || !c.Records[0].ScheduledTime.Equal(at(9, 0)) {
		t.Fatalf("first record mutated: %+v", c.Records[0])
	}
}

func TestHasCompletedToday(t *testing.T) {
	var c CheckInState
	now := at(9, 5)

	if c.HasCompletedToday(now) {
		t.Fatalf("empty log should not report completion")
	}

	done := now
	c.AddRecord(CheckInRecord{ScheduledTime: at(9, 0), CompletedAt: &done}, now)
	if !c.HasCompletedToday(now) {
		t.Fatalf("completion today not detected")
	}
	if c.HasCompletedToday(now.AddDate(0, 0, 1)) {
		t.Fatalf("yesterday's completion counted for today")
	}
}

func TestMissedRecords(t *testing.T) {
	var c CheckInState
	now := at(19, 0)

	c.AddRecord(CheckInRecord{ScheduledTime: at(9, 0), Missed: true}, now)
	done := now
	c.AddRecord(CheckInRecord{ScheduledTime: at(18, 0), CompletedAt: &done}, now)

	missed := c.MissedRecords()
	if len(missed) != 1 || !missed[0].ScheduledTime.Equal(at(9, 0)) {
		t.Fatalf("missed=%+v, want one 09:00 record", missed)
	}
}
