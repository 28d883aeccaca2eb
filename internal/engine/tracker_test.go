package engine

import (
	"testing"
	"time"
)

func trackerFixture(now time.Time, texts ...string) *Tracker {
	var t Tracker
	for _, text := range texts {
		t.Add(text, 0, 0, now)
	}
	return &t
}

func TestToggleAllCompleteSignalFiresOnce(t *testing.T) {
	now := testDay
	tr := trackerFixture(now, "water", "walk", "journal")

	if tr.Toggle(tr.Items[0].ID, now) {
		t.Fatalf("signal fired with items remaining")
	}
	if tr.Toggle(tr.Items[1].ID, now) {
		t.Fatalf("signal fired with items remaining")
	}
	if !tr.Toggle(tr.Items[2].ID, now) {
		t.Fatalf("signal did not fire on last item")
	}

	// Un-toggle one, then re-toggle it: completed again today, no re-fire.
	if tr.Toggle(tr.Items[0].ID, now) {
		t.Fatalf("signal fired on un-toggle")
	}
	if tr.Toggle(tr.Items[0].ID, now) {
		t.Fatalf("signal re-fired on same day")
	}

	// Next day it may fire again after a reset.
	tomorrow := now.AddDate(0, 0, 1)
	tr.DailyReset(tomorrow)
	for i := range tr.Items {
		if tr.Items[i].Completed {
			t.Fatalf("item %d still complete after rollover reset", i)
		}
	}
	for i := 0; i < 2; i++ {
		tr.Toggle(tr.Items[i].ID, tomorrow)
	}
	if !tr.Toggle(tr.Items[2].ID, tomorrow) {
		t.Fatalf("signal did not fire on the next day")
	}
}

func TestToggleUnknownIDNoOp(t *testing.T) {
	now := testDay
	tr := trackerFixture(now, "water")

	if tr.Toggle("nope", now) {
		t.Fatalf("unknown id fired the signal")
	}
	if tr.Items[0].Completed {
		t.Fatalf("unknown id mutated an item")
	}
}

func TestDailyResetIdempotent(t *testing.T) {
	now := testDay
	tr := trackerFixture(now, "water", "walk")

	// One completed yesterday, one completed today.
	yesterday := now.AddDate(0, 0, -1)
	tr.Items[0].Completed = true
	tr.Items[0].CompletedAt = &yesterday
	tr.Toggle(tr.Items[1].ID, now)

	tr.DailyReset(now)
	first := append([]TrackerItem(nil), tr.Items...)

	if tr.Items[0].Completed {
		t.Fatalf("yesterday's completion survived the reset")
	}
	if !tr.Items[1].Completed {
		t.Fatalf("today's completion was reset")
	}

	tr.DailyReset(now)
	if len(tr.Items) != len(first) {
		t.Fatalf("second reset changed item count")
	}
	for i := range tr.Items {
		if tr.Items[i].Completed != first[i].Completed {
			t.Fatalf("second reset changed item %d", i)
		}
	}
}

func TestReorder(t *testing.T) {
	now := testDay
	tr := trackerFixture(now, "a", "b", "c")
	ids := []string{tr.Items[0].ID, tr.Items[1].ID, tr.Items[2].ID}

	tr.Reorder(ids[2], ids[0])

	want := []string{ids[2], ids[0], ids[1]}
	for i, id := range want {
		if tr.Items[i].ID != id {
			t.Fatalf("order[%d]=%s, want %s", i, tr.Items[i].ID, id)
		}
		if tr.Items[i].Order != i {
			t.Fatalf("order field not dense at %d: %d", i, tr.Items[i].Order)
		}
	}

	// Same id and missing id are no-ops.
	before := append([]TrackerItem(nil), tr.Items...)
	tr.Reorder(ids[0], ids[0])
	tr.Reorder("missing", ids[0])
	for i := range before {
		if tr.Items[i].ID != before[i].ID {
			t.Fatalf("no-op reorder changed positions")
		}
	}
}

func TestAddAndRemove(t *testing.T) {
	now := testDay
	var tr Tracker

	if item := tr.Add("   ", 0, 0, now); item != nil {
		t.Fatalf("blank text accepted")
	}

	a := tr.Add("first", 5, 1, now)
	b := tr.Add("second", 0, 0, now)
	if a.Order != 0 || b.Order != 1 {
		t.Fatalf("orders=%d,%d want 0,1", a.Order, b.Order)
	}

	tr.Remove(a.ID)
	if len(tr.Items) != 1 || tr.Items[0].Order != 0 {
		t.Fatalf("remove did not renumber: %+v", tr.Items)
	}
	tr.Remove("missing")
	if len(tr.Items) != 1 {
		t.Fatalf("removing a missing id changed the list")
	}
}

func TestAllCompleteEmpty(t *testing.T) {
	var tr Tracker
	if tr.AllComplete() {
		t.Fatalf("empty tracker reported complete")
	}
}
