package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Add appends an item to the end of the list. Blank text is ignored and
// returns nil.
func (t *Tracker) Add(text string, rewardXP, rewardCoins int, now time.Time) *TrackerItem {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	item := TrackerItem{
		ID:          uuid.NewString(),
		Text:        text,
		Order:       len(t.Items),
		RewardXP:    rewardXP,
		RewardCoins: rewardCoins,
		CreatedAt:   now,
	}
	t.Items = append(t.Items, item)
	return &t.Items[len(t.Items)-1]
}

// Remove deletes the item with the given id and renumbers the rest.
// Unknown ids are a no-op.
func (t *Tracker) Remove(id string) {
	for i := range t.Items {
		if t.Items[i].ID == id {
			t.Items = append(t.Items[:i], t.Items[i+1:]...)
			t.renumber()
			return
		}
	}
}

// Find returns the item with the given id, or nil.
func (t *Tracker) Find(id string) *TrackerItem {
	for i := range t.Items {
		if t.Items[i].ID == id {
			return &t.Items[i]
		}
	}
	return nil
}

// Toggle flips an item's completion and reports whether this toggle made
// the whole collection complete for the first time today. The signal fires
// at most once per day: once CompletedAt is set to today, re-completing the
// collection stays silent. Unknown ids are a no-op.
func (t *Tracker) Toggle(id string, now time.Time) bool {
	item := t.Find(id)
	if item == nil {
		return false
	}

	if item.Completed {
		item.Completed = false
		item.CompletedAt = nil
	} else {
		item.Completed = true
		done := now
		item.CompletedAt = &done
	}

	if !item.Completed || !t.AllComplete() {
		return false
	}
	if t.CompletedAt != nil && sameDay(*t.CompletedAt, now) {
		return false
	}
	done := now
	t.CompletedAt = &done
	return true
}

// AllComplete reports whether every item is complete. Empty collections are
// never complete.
func (t *Tracker) AllComplete() bool {
	if len(t.Items) == 0 {
		return false
	}
	for i := range t.Items {
		if !t.Items[i].Completed {
			return false
		}
	}
	return true
}

// DailyReset clears completion on items not completed today. Items already
// completed on the current date are untouched, which makes repeated calls
// within one day idempotent.
func (t *Tracker) DailyReset(now time.Time) {
	for i := range t.Items {
		item := &t.Items[i]
		if item.CompletedAt != nil && sameDay(*item.CompletedAt, now) {
			continue
		}
		item.Completed = false
		item.CompletedAt = nil
	}
	if t.CompletedAt != nil && !sameDay(*t.CompletedAt, now) {
		t.CompletedAt = nil
	}
}

// Reorder moves the dragged item to the target item's position and assigns
// dense order values. No-op when ids are equal or either is missing.
func (t *Tracker) Reorder(draggedID, targetID string) {
	if draggedID == targetID {
		return
	}
	from, to := -1, -1
	for i := range t.Items {
		switch t.Items[i].ID {
		case draggedID:
			from = i
		case targetID:
			to = i
		}
	}
	if from == -1 || to == -1 {
		return
	}

	dragged := t.Items[from]
	rest := append(t.Items[:from:from], t.Items[from+1:]...)
	t.Items = append(rest[:to:to], append([]TrackerItem{dragged}, rest[to:]...)...)
	t.renumber()
}

// Incomplete returns the incomplete items in order.
func (t *Tracker) Incomplete() []TrackerItem {
	var out []TrackerItem
	for i := range t.Items {
		if !t.Items[i].Completed {
			out = append(out, t.Items[i])
		}
	}
	return out
}

func (t *Tracker) renumber() {
	for i := range t.Items {
		t.Items[i].Order = i
	}
}
