package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jordan-corbett-digital/gnomemode/internal/storage"
)

// Reward amounts for finishing a whole collection in one day.
const (
	GoalsCompleteXP     = 25
	GoalsCompleteCoins  = 5
	RitualCompleteXP    = 30
	RitualCompleteCoins = 5
	SetupGoalXP         = 5
)

// TrackerKind names the tracker instances the service owns.
type TrackerKind string

const (
	TrackerDailyGoals    TrackerKind = "daily-goals"
	TrackerSetupGoals    TrackerKind = "setup-goals"
	TrackerMorningRitual TrackerKind = "morning"
	TrackerEveningRitual TrackerKind = "evening"
)

// Service owns every state container, applies the pure transitions and
// persists the touched blobs after each mutation. All mutation happens on
// the caller's goroutine; there is no internal locking.
type Service struct {
	store *storage.Store
	clock Clock
	log   *zap.Logger

	Progression ProgressionState
	CheckIn     CheckInState
	DailyGoals  Tracker
	SetupGoals  Tracker
	Morning     Tracker
	Evening     Tracker
	Quests      QuestState
	Inventory   Inventory
	Inbox       Inbox
	Profile     Profile
}

// NewService loads every store from the blob store. A missing or undecodable
// blob falls back to defaults; decode failures are logged and absorbed.
func NewService(ctx context.Context, store *storage.Store, clock Clock, log *zap.Logger) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Service{
		store:       store,
		clock:       clock,
		log:         log,
		Progression: DefaultProgression(),
		SetupGoals:  defaultSetupGoals(clock.Now()),
		Profile:     DefaultProfile(),
	}

	s.load(ctx, storage.KeyGame, &s.Progression, func() { s.Progression = DefaultProgression() })
	s.load(ctx, storage.KeyCheckIn, &s.CheckIn, func() { s.CheckIn = CheckInState{} })
	s.load(ctx, storage.KeyDailyGoals, &s.DailyGoals, func() { s.DailyGoals = Tracker{} })
	s.load(ctx, storage.KeySetupGoals, &s.SetupGoals, func() { s.SetupGoals = defaultSetupGoals(clock.Now()) })
	s.load(ctx, storage.KeyMorningRitual, &s.Morning, func() { s.Morning = Tracker{} })
	s.load(ctx, storage.KeyEveningRitual, &s.Evening, func() { s.Evening = Tracker{} })
	s.load(ctx, storage.KeyQuests, &s.Quests, func() { s.Quests = QuestState{} })
	s.load(ctx, storage.KeyInventory, &s.Inventory, func() { s.Inventory = Inventory{} })
	s.load(ctx, storage.KeyMessages, &s.Inbox, func() { s.Inbox = Inbox{} })
	s.load(ctx, storage.KeyProfile, &s.Profile, func() { s.Profile = DefaultProfile() })

	// Stored blobs predate some invariants; re-derive rather than trust.
	info := CalculateLevel(s.Progression.XP)
	s.Progression.Level = info.Level
	s.Progression.XPToNext = info.XPToNext
	if !s.Progression.GardenState.IsValid() {
		s.Progression.GardenState = GardenHealthy
	}

	return s
}

func (s *Service) load(ctx context.Context, key string, v any, reset func()) {
	if _, err := s.store.Load(ctx, key, v); err != nil {
		s.log.Warn("store load failed, using defaults", zap.String("key", key), zap.Error(err))
		reset()
	}
}

func (s *Service) save(ctx context.Context, key string, v any) error {
	if err := s.store.Save(ctx, key, v); err != nil {
		return err
	}
	return nil
}

func (s *Service) Clock() Clock { return s.clock }

func defaultSetupGoals(now time.Time) Tracker {
	var t Tracker
	t.Add("Set Morning Ritual", SetupGoalXP, 0, now)
	t.Add("Set Evening Ritual", SetupGoalXP, 0, now)
	t.Add("Add Daily Goals", SetupGoalXP, 0, now)
	return t
}

// StartDay runs the once-per-session date rollover: clears stale
// checked-in-today flags, resets trackers not completed today and refreshes
// the quest pool. Idempotent within a calendar day.
func (s *Service) StartDay(ctx context.Context) error {
	now := s.clock.Now()

	s.Progression.ResetDailyCheckIn(now)
	s.DailyGoals.DailyReset(now)
	s.Morning.DailyReset(now)
	s.Evening.DailyReset(now)
	s.Quests.GenerateDaily(now)
	s.Quests.GenerateSpecial(now)

	for key, v := range map[string]any{
		storage.KeyGame:          &s.Progression,
		storage.KeyDailyGoals:    &s.DailyGoals,
		storage.KeyMorningRitual: &s.Morning,
		storage.KeyEveningRitual: &s.Evening,
		storage.KeyQuests:        &s.Quests,
	} {
		if err := s.save(ctx, key, v); err != nil {
			return err
		}
	}
	return nil
}

// SetSchedule installs the check-in schedule built from the setup flow.
func (s *Service) SetSchedule(ctx context.Context, times []string, graceMinutes, reminderMinutes int, notify bool) error {
	sched, err := NewSchedule(times, graceMinutes, reminderMinutes, notify)
	if err != nil {
		return err
	}
	s.CheckIn.Schedule = sched
	return s.save(ctx, storage.KeyCheckIn, &s.CheckIn)
}

// SetProfile replaces the stored profile.
func (s *Service) SetProfile(ctx context.Context, p Profile) error {
	s.Profile = p
	return s.save(ctx, storage.KeyProfile, &s.Profile)
}

// CheckInResult reports what a submitted check-in changed.
type CheckInResult struct {
	Record       CheckInRecord
	XPAwarded    int
	CoinsAwarded int
	LevelBefore  int
	LevelAfter   int
	LevelUp      bool
	Streak       int
}

// CheckInSuccess submits a successful check-in: appends the record, applies
// the progression transition and drops an inbox note. The record's
// scheduled time is the currently open slot, or the submission time when no
// slot is open.
func (s *Service) CheckInSuccess(ctx context.Context, response *CheckInResponse) (*CheckInResult, error) {
	if s.CheckIn.Schedule == nil || !s.CheckIn.Schedule.SetupCompleted {
		return nil, SetupIncompleteError{What: "check-in schedule"}
	}
	now := s.clock.Now()
	levelBefore := s.Progression.Level

	scheduled := now
	if slot := s.CheckIn.CurrentSlot(now); slot != nil {
		scheduled = *slot
	}

	done := now
	rec := s.CheckIn.AddRecord(CheckInRecord{
		ScheduledTime: scheduled,
		CompletedAt:   &done,
		Response:      response,
		XPReward:      CheckInXP,
	}, now)

	levelUp := s.Progression.CheckInSuccess(now)

	s.Inbox.Add("Check-in complete", fmt.Sprintf("Day %d, streak %d. The garden stays green.", s.Progression.Day, s.Progression.Streak), MessageCheckIn, now)
	if levelUp {
		s.Inbox.Add("Level up!", fmt.Sprintf("You reached level %d.", s.Progression.Level), MessageLevelUp, now)
	}

	for key, v := range map[string]any{
		storage.KeyGame:     &s.Progression,
		storage.KeyCheckIn:  &s.CheckIn,
		storage.KeyMessages: &s.Inbox,
	} {
		if err := s.save(ctx, key, v); err != nil {
			return nil, err
		}
	}

	return &CheckInResult{
		Record:       rec,
		XPAwarded:    CheckInXP,
		CoinsAwarded: CheckInCoins,
		LevelBefore:  levelBefore,
		LevelAfter:   s.Progression.Level,
		LevelUp:      levelUp,
		Streak:       s.Progression.Streak,
	}, nil
}

// CheckInFail submits a failed check-in: a missed record is appended and
// the stake penalty is transferred. XP and coins are never debited.
func (s *Service) CheckInFail(ctx context.Context, penalty float64) (*CheckInRecord, error) {
	if s.CheckIn.Schedule == nil || !s.CheckIn.Schedule.SetupCompleted {
		return nil, SetupIncompleteError{What: "check-in schedule"}
	}
	now := s.clock.Now()

	scheduled := now
	if slot := s.CheckIn.CurrentSlot(now); slot != nil {
		scheduled = *slot
	}
	rec := s.CheckIn.AddRecord(CheckInRecord{
		ScheduledTime: scheduled,
		Missed:        true,
	}, now)

	s.Progression.CheckInFail(penalty, now)
	s.Inbox.Add("Check-in failed", fmt.Sprintf("%.2f sent to %s. Streak reset.", penalty, s.nemesisName()), MessageCheckIn, now)

	for key, v := range map[string]any{
		storage.KeyGame:     &s.Progression,
		storage.KeyCheckIn:  &s.CheckIn,
		storage.KeyMessages: &s.Inbox,
	} {
		if err := s.save(ctx, key, v); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}

// FulfillPromise restores a failing garden via the fulfillment ritual.
func (s *Service) FulfillPromise(ctx context.Context, phrase string) (bool, error) {
	if !s.Progression.FulfillPromise(phrase) {
		return false, nil
	}
	return true, s.save(ctx, storage.KeyGame, &s.Progression)
}

func (s *Service) nemesisName() string {
	if s.Profile.Nemesis != "" {
		return s.Profile.Nemesis
	}
	return "your nemesis"
}

// Tracker returns the tracker instance for a kind.
func (s *Service) Tracker(kind TrackerKind) *Tracker {
	switch kind {
	case TrackerDailyGoals:
		return &s.DailyGoals
	case TrackerSetupGoals:
		return &s.SetupGoals
	case TrackerMorningRitual:
		return &s.Morning
	case TrackerEveningRitual:
		return &s.Evening
	default:
		return nil
	}
}

func trackerKey(kind TrackerKind) string {
	switch kind {
	case TrackerDailyGoals:
		return storage.KeyDailyGoals
	case TrackerSetupGoals:
		return storage.KeySetupGoals
	case TrackerMorningRitual:
		return storage.KeyMorningRitual
	case TrackerEveningRitual:
		return storage.KeyEveningRitual
	default:
		return ""
	}
}

func trackerReward(kind TrackerKind) (xp, coins int) {
	switch kind {
	case TrackerMorningRitual, TrackerEveningRitual:
		return RitualCompleteXP, RitualCompleteCoins
	case TrackerDailyGoals:
		return GoalsCompleteXP, GoalsCompleteCoins
	default:
		return 0, 0
	}
}

// AddItem appends an item to a tracker and persists it.
func (s *Service) AddItem(ctx context.Context, kind TrackerKind, text string) (*TrackerItem, error) {
	t := s.Tracker(kind)
	if t == nil {
		return nil, fmt.Errorf("unknown tracker %q", kind)
	}
	item := t.Add(text, 0, 0, s.clock.Now())
	if item == nil {
		return nil, fmt.Errorf("item text is required")
	}
	t.SetupCompleted = true
	return item, s.save(ctx, trackerKey(kind), t)
}

// RemoveItem deletes a tracker item. Unknown ids are a silent no-op.
func (s *Service) RemoveItem(ctx context.Context, kind TrackerKind, id string) error {
	t := s.Tracker(kind)
	if t == nil {
		return fmt.Errorf("unknown tracker %q", kind)
	}
	t.Remove(id)
	return s.save(ctx, trackerKey(kind), t)
}

// ToggleResult reports a toggle and the collection reward when this toggle
// completed the whole collection for the first time today.
type ToggleResult struct {
	AllComplete  bool
	XPAwarded    int
	CoinsAwarded int
	LevelUp      bool
}

// ToggleItem flips a tracker item and credits the collection reward when
// the collection just became fully complete. For setup goals the per-item
// reward is credited on the item's first completion instead.
func (s *Service) ToggleItem(ctx context.Context, kind TrackerKind, id string) (*ToggleResult, error) {
	t := s.Tracker(kind)
	if t == nil {
		return nil, fmt.Errorf("unknown tracker %q", kind)
	}
	now := s.clock.Now()

	res := &ToggleResult{}
	item := t.Find(id)
	wasCompleted := item != nil && item.Completed

	res.AllComplete = t.Toggle(id, now)

	if kind == TrackerSetupGoals && item != nil && !wasCompleted && item.Completed && item.RewardXP > 0 {
		res.XPAwarded += item.RewardXP
		res.CoinsAwarded += item.RewardCoins
	}
	if res.AllComplete {
		xp, coins := trackerReward(kind)
		res.XPAwarded += xp
		res.CoinsAwarded += coins
	}

	if res.XPAwarded > 0 || res.CoinsAwarded > 0 {
		res.LevelUp = s.Progression.AddXP(res.XPAwarded)
		s.Progression.AddCoins(res.CoinsAwarded)
		if res.LevelUp {
			s.Inbox.Add("Level up!", fmt.Sprintf("You reached level %d.", s.Progression.Level), MessageLevelUp, now)
			if err := s.save(ctx, storage.KeyMessages, &s.Inbox); err != nil {
				return nil, err
			}
		}
		if err := s.save(ctx, storage.KeyGame, &s.Progression); err != nil {
			return nil, err
		}
	}

	return res, s.save(ctx, trackerKey(kind), t)
}

// ReorderItems applies a drag-to-target reorder on a tracker.
func (s *Service) ReorderItems(ctx context.Context, kind TrackerKind, draggedID, targetID string) error {
	t := s.Tracker(kind)
	if t == nil {
		return fmt.Errorf("unknown tracker %q", kind)
	}
	t.Reorder(draggedID, targetID)
	return s.save(ctx, trackerKey(kind), t)
}

// QuestResult reports a completed quest and its rewards.
type QuestResult struct {
	Quest        Quest
	XPAwarded    int
	CoinsAwarded int
	LevelUp      bool
}

// CompleteQuest marks a quest complete and credits its rewards. Unknown or
// already-completed quests return nil without error.
func (s *Service) CompleteQuest(ctx context.Context, id string) (*QuestResult, error) {
	now := s.clock.Now()
	quest := s.Quests.Complete(id, now)
	if quest == nil {
		return nil, nil
	}

	levelUp := s.Progression.AddXP(quest.RewardXP)
	s.Progression.AddCoins(quest.RewardCoins)

	s.Inbox.Add("Quest complete", fmt.Sprintf("%s: +%d XP, +%d coins.", quest.Title, quest.RewardXP, quest.RewardCoins), MessageQuest, now)
	if levelUp {
		s.Inbox.Add("Level up!", fmt.Sprintf("You reached level %d.", s.Progression.Level), MessageLevelUp, now)
	}

	for key, v := range map[string]any{
		storage.KeyGame:     &s.Progression,
		storage.KeyQuests:   &s.Quests,
		storage.KeyMessages: &s.Inbox,
	} {
		if err := s.save(ctx, key, v); err != nil {
			return nil, err
		}
	}

	return &QuestResult{
		Quest:        *quest,
		XPAwarded:    quest.RewardXP,
		CoinsAwarded: quest.RewardCoins,
		LevelUp:      levelUp,
	}, nil
}

// Purchase buys a catalog item with coins and adds it to the inventory.
func (s *Service) Purchase(ctx context.Context, itemID string) (*ShopItem, error) {
	item := CatalogItem(itemID)
	if item == nil {
		return nil, fmt.Errorf("shop item %q not found", itemID)
	}
	if s.Progression.Coins < item.Price {
		return nil, InsufficientCoinsError{Price: item.Price, Coins: s.Progression.Coins}
	}

	s.Progression.AddCoins(-item.Price)
	s.Inventory.Add(*item, 1)

	for key, v := range map[string]any{
		storage.KeyGame:      &s.Progression,
		storage.KeyInventory: &s.Inventory,
	} {
		if err := s.save(ctx, key, v); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// EquipItem equips an owned item and persists the inventory.
func (s *Service) EquipItem(ctx context.Context, id string) error {
	s.Inventory.Equip(id)
	return s.save(ctx, storage.KeyInventory, &s.Inventory)
}

// UnequipItem clears the equipped flag and persists the inventory.
func (s *Service) UnequipItem(ctx context.Context, id string) error {
	s.Inventory.Unequip(id)
	return s.save(ctx, storage.KeyInventory, &s.Inventory)
}

// MarkMessageRead flags an inbox message read.
func (s *Service) MarkMessageRead(ctx context.Context, id string) error {
	s.Inbox.MarkRead(id)
	return s.save(ctx, storage.KeyMessages, &s.Inbox)
}

// DeleteMessage removes an inbox message.
func (s *Service) DeleteMessage(ctx context.Context, id string) error {
	s.Inbox.Delete(id)
	return s.save(ctx, storage.KeyMessages, &s.Inbox)
}

// ResetAll restores every store to its defaults. This is the only
// destructive operation in the app and is gated behind an explicit flag in
// the CLI.
func (s *Service) ResetAll(ctx context.Context) error {
	now := s.clock.Now()

	s.Progression = DefaultProgression()
	s.CheckIn = CheckInState{}
	s.DailyGoals = Tracker{}
	s.SetupGoals = defaultSetupGoals(now)
	s.Morning = Tracker{}
	s.Evening = Tracker{}
	s.Quests = QuestState{}
	s.Inventory = Inventory{}
	s.Inbox = Inbox{}
	s.Profile = DefaultProfile()

	for key, v := range map[string]any{
		storage.KeyGame:          &s.Progression,
		storage.KeyCheckIn:       &s.CheckIn,
		storage.KeyDailyGoals:    &s.DailyGoals,
		storage.KeySetupGoals:    &s.SetupGoals,
		storage.KeyMorningRitual: &s.Morning,
		storage.KeyEveningRitual: &s.Evening,
		storage.KeyQuests:        &s.Quests,
		storage.KeyInventory:     &s.Inventory,
		storage.KeyMessages:      &s.Inbox,
		storage.KeyProfile:       &s.Profile,
	} {
		if err := s.save(ctx, key, v); err != nil {
			return err
		}
	}
	return nil
}
