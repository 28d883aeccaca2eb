package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jordan-corbett-digital/gnomemode/internal/storage"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func newTestService(t *testing.T) (*Service, *storage.Store, *fixedClock) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "gnome.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := storage.NewStore(db)
	clock := &fixedClock{now: testDay}
	return NewService(ctx, store, clock, nil), store, clock
}

func mustSchedule(t *testing.T, svc *Service) {
	t.Helper()
	if err := svc.SetSchedule(context.Background(), []string{"09:00", "18:00"}, 60, 10, false); err != nil {
		t.Fatalf("set schedule: %v", err)
	}
}

func TestCheckInRequiresSchedule(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	var incomplete SetupIncompleteError
	if _, err := svc.CheckInSuccess(ctx, nil); !errors.As(err, &incomplete) {
		t.Fatalf("want SetupIncompleteError, got %v", err)
	}
	if _, err := svc.CheckInFail(ctx, 50); !errors.As(err, &incomplete) {
		t.Fatalf("want SetupIncompleteError, got %v", err)
	}
	if svc.Progression.Streak != 0 || svc.Progression.StakeLost != 0 {
		t.Fatalf("rejected check-in mutated state: %+v", svc.Progression)
	}
}

func TestServicePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	svc, store, clock := newTestService(t)

	if err := svc.SetSchedule(ctx, []string{"09:00", "18:00"}, 60, 10, false); err != nil {
		t.Fatalf("set schedule: %v", err)
	}
	if _, err := svc.AddItem(ctx, TrackerDailyGoals, "water the plants"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := svc.CheckInSuccess(ctx, &CheckInResponse{Feeling: "good", DidTheThing: true}); err != nil {
		t.Fatalf("check in: %v", err)
	}

	reloaded := NewService(ctx, store, clock, nil)

	if reloaded.CheckIn.Schedule == nil || len(reloaded.CheckIn.Schedule.Times) != 2 {
		t.Fatalf("schedule did not survive reload: %+v", reloaded.CheckIn.Schedule)
	}
	if len(reloaded.DailyGoals.Items) != 1 || reloaded.DailyGoals.Items[0].Text != "water the plants" {
		t.Fatalf("daily goals did not survive reload: %+v", reloaded.DailyGoals.Items)
	}
	if reloaded.Progression.XP != CheckInXP {
		t.Fatalf("xp=%d, want %d", reloaded.Progression.XP, CheckInXP)
	}
	if reloaded.Progression.Coins != StartingCoins+CheckInCoins {
		t.Fatalf("coins=%d, want %d", reloaded.Progression.Coins, StartingCoins+CheckInCoins)
	}
	if !reloaded.Progression.CheckedInToday || reloaded.Progression.Streak != 1 {
		t.Fatalf("check-in state did not survive reload: %+v", reloaded.Progression)
	}
	if len(reloaded.CheckIn.Records) != 1 {
		t.Fatalf("records=%d, want 1", len(reloaded.CheckIn.Records))
	}
}

func TestServiceFreshDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)

	if svc.Progression.Coins != StartingCoins || svc.Progression.Level != 1 {
		t.Fatalf("fresh progression: %+v", svc.Progression)
	}
	if svc.Progression.GardenState != GardenHealthy {
		t.Fatalf("fresh garden state %q", svc.Progression.GardenState)
	}
	if len(svc.SetupGoals.Items) != 3 {
		t.Fatalf("setup goals=%d, want 3", len(svc.SetupGoals.Items))
	}
	if svc.Profile.GnomeName != "Slappy" {
		t.Fatalf("default gnome name %q", svc.Profile.GnomeName)
	}
}

func TestStartDayIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	if err := svc.StartDay(ctx); err != nil {
		t.Fatalf("start day: %v", err)
	}
	daily := len(svc.Quests.Daily())
	special := len(svc.Quests.Special())

	if err := svc.StartDay(ctx); err != nil {
		t.Fatalf("second start day: %v", err)
	}
	if len(svc.Quests.Daily()) != daily || len(svc.Quests.Special()) != special {
		t.Fatalf("quest pool changed on same-day repeat: %d/%d", len(svc.Quests.Daily()), len(svc.Quests.Special()))
	}
}

func TestStartDayRollover(t *testing.T) {
	ctx := context.Background()
	svc, _, clock := newTestService(t)
	mustSchedule(t, svc)

	if err := svc.StartDay(ctx); err != nil {
		t.Fatalf("start day: %v", err)
	}
	if _, err := svc.CheckInSuccess(ctx, nil); err != nil {
		t.Fatalf("check in: %v", err)
	}
	item, err := svc.AddItem(ctx, TrackerDailyGoals, "stretch")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := svc.ToggleItem(ctx, TrackerDailyGoals, item.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	clock.now = clock.now.AddDate(0, 0, 1)
	if err := svc.StartDay(ctx); err != nil {
		t.Fatalf("rollover start day: %v", err)
	}

	if svc.Progression.CheckedInToday {
		t.Fatalf("checked-in flag survived the rollover")
	}
	if svc.DailyGoals.Items[0].Completed {
		t.Fatalf("goal completion survived the rollover")
	}
}

func TestCheckInFailThroughService(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	mustSchedule(t, svc)

	rec, err := svc.CheckInFail(ctx, 50)
	if err != nil {
		t.Fatalf("check in fail: %v", err)
	}
	if !rec.Missed {
		t.Fatalf("record not marked missed")
	}
	if svc.Progression.GardenState != GardenFailing {
		t.Fatalf("garden=%q, want failing", svc.Progression.GardenState)
	}
	if svc.Progression.StakeLost != 50 {
		t.Fatalf("stakeLost=%v, want 50", svc.Progression.StakeLost)
	}
	if svc.Progression.Coins != StartingCoins {
		t.Fatalf("coins were debited on fail: %d", svc.Progression.Coins)
	}
	if len(svc.Inbox.Messages) == 0 {
		t.Fatalf("no inbox message for the failed check-in")
	}

	ok, err := svc.FulfillPromise(ctx, FulfillmentPhrase)
	if err != nil || !ok {
		t.Fatalf("fulfill promise: ok=%v err=%v", ok, err)
	}
	if svc.Progression.GardenState != GardenHealthy {
		t.Fatalf("garden not restored: %q", svc.Progression.GardenState)
	}
}

func TestToggleItemRewards(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	a, _ := svc.AddItem(ctx, TrackerDailyGoals, "one")
	b, _ := svc.AddItem(ctx, TrackerDailyGoals, "two")

	res, err := svc.ToggleItem(ctx, TrackerDailyGoals, a.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.AllComplete || res.XPAwarded != 0 {
		t.Fatalf("partial completion rewarded: %+v", res)
	}

	res, err = svc.ToggleItem(ctx, TrackerDailyGoals, b.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.AllComplete {
		t.Fatalf("completing the last item did not signal")
	}
	if res.XPAwarded != GoalsCompleteXP || res.CoinsAwarded != GoalsCompleteCoins {
		t.Fatalf("rewards=%d/%d, want %d/%d", res.XPAwarded, res.CoinsAwarded, GoalsCompleteXP, GoalsCompleteCoins)
	}

	// Un-toggle and re-toggle the same day: no second reward.
	if _, err := svc.ToggleItem(ctx, TrackerDailyGoals, b.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	res, err = svc.ToggleItem(ctx, TrackerDailyGoals, b.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.AllComplete || res.XPAwarded != 0 {
		t.Fatalf("collection reward repeated same day: %+v", res)
	}
}

func TestSetupGoalPerItemReward(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	id := svc.SetupGoals.Items[0].ID
	res, err := svc.ToggleItem(ctx, TrackerSetupGoals, id)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.XPAwarded != SetupGoalXP {
		t.Fatalf("xp=%d, want %d", res.XPAwarded, SetupGoalXP)
	}

	res, err = svc.ToggleItem(ctx, TrackerSetupGoals, id)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.XPAwarded != 0 {
		t.Fatalf("un-toggle awarded %d XP", res.XPAwarded)
	}
}

func TestCompleteQuestThroughService(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	if err := svc.StartDay(ctx); err != nil {
		t.Fatalf("start day: %v", err)
	}

	res, err := svc.CompleteQuest(ctx, "daily-warrior")
	if err != nil {
		t.Fatalf("complete quest: %v", err)
	}
	if res == nil || res.XPAwarded != 100 || res.CoinsAwarded != 50 {
		t.Fatalf("quest result: %+v", res)
	}
	if !res.LevelUp {
		t.Fatalf("100 XP from level 1 should level up")
	}

	res, err = svc.CompleteQuest(ctx, "daily-warrior")
	if err != nil || res != nil {
		t.Fatalf("re-complete should be a silent no-op: res=%+v err=%v", res, err)
	}
	res, err = svc.CompleteQuest(ctx, "no-such-quest")
	if err != nil || res != nil {
		t.Fatalf("unknown quest should be a silent no-op: res=%+v err=%v", res, err)
	}
}

func TestPurchaseAndEquip(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	item, err := svc.Purchase(ctx, "hat-1")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if svc.Progression.Coins != StartingCoins-item.Price {
		t.Fatalf("coins=%d after buying for %d", svc.Progression.Coins, item.Price)
	}
	if owned := svc.Inventory.Find("hat-1"); owned == nil {
		t.Fatalf("purchased item not in inventory")
	}

	// 50 coins left, hat-2 costs 100.
	_, err = svc.Purchase(ctx, "hat-2")
	var insufficient InsufficientCoinsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("want InsufficientCoinsError, got %v", err)
	}
	if svc.Progression.Coins != StartingCoins-item.Price {
		t.Fatalf("failed purchase changed the balance: %d", svc.Progression.Coins)
	}

	if _, err := svc.Purchase(ctx, "bogus"); err == nil {
		t.Fatalf("unknown item purchase succeeded")
	}

	if err := svc.EquipItem(ctx, "hat-1"); err != nil {
		t.Fatalf("equip: %v", err)
	}
	equipped := svc.Inventory.Equipped()
	if len(equipped) != 1 || equipped[0].ItemID != "hat-1" {
		t.Fatalf("hat-1 not equipped: %+v", equipped)
	}
}

func TestResetAll(t *testing.T) {
	ctx := context.Background()
	svc, store, clock := newTestService(t)
	mustSchedule(t, svc)

	if _, err := svc.CheckInSuccess(ctx, nil); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if _, err := svc.AddItem(ctx, TrackerDailyGoals, "stretch"); err != nil {
		t.Fatalf("add item: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if svc.Progression.XP != 0 || svc.Progression.Coins != StartingCoins {
		t.Fatalf("progression not reset: %+v", svc.Progression)
	}
	if len(svc.DailyGoals.Items) != 0 {
		t.Fatalf("daily goals survived reset")
	}

	reloaded := NewService(ctx, store, clock, nil)
	if reloaded.Progression.XP != 0 || len(reloaded.DailyGoals.Items) != 0 {
		t.Fatalf("reset was not persisted")
	}
}
