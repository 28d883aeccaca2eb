package engine

import "time"

type GardenState string

const (
	GardenHealthy GardenState = "healthy"
	GardenFailing GardenState = "failing"
)

func (g GardenState) IsValid() bool {
	switch g {
	case GardenHealthy, GardenFailing:
		return true
	default:
		return false
	}
}

// ProgressionState is the whole game-progress blob: level, XP, coins and the
// garden bookkeeping. It is persisted as one JSON document per save.
type ProgressionState struct {
	Level    int `json:"level"`
	XP       int `json:"xp"`
	Coins    int `json:"coins"`
	XPToNext int `json:"xpToNextLevel"`

	GardenState     GardenState `json:"gardenState"`
	Day             int         `json:"day"`
	Streak          int         `json:"streak"`
	StakeLost       float64     `json:"stakeLost"`
	LastCheckInDate string      `json:"lastCheckInDate,omitempty"` // YYYY-MM-DD
	CheckedInToday  bool        `json:"checkedInToday"`
}

const StartingCoins = 100

func DefaultProgression() ProgressionState {
	return ProgressionState{
		Level:       1,
		XP:          0,
		Coins:       StartingCoins,
		XPToNext:    XPForLevel(1),
		GardenState: GardenHealthy,
		Day:         1,
	}
}

// CheckInSchedule is the one-time-setup schedule for daily check-ins.
// Times is kept sorted and unique (HH:MM, 24h).
type CheckInSchedule struct {
	Times                 []string `json:"times"`
	GracePeriodMinutes    int      `json:"gracePeriodMinutes"`
	ReminderMinutesBefore int      `json:"reminderMinutesBefore"`
	NotificationsEnabled  bool     `json:"notificationsEnabled"`
	SetupCompleted        bool     `json:"setupCompleted"`
}

// CheckInResponse holds the structured answers submitted with a check-in.
type CheckInResponse struct {
	Feeling     string `json:"feeling"`
	DidTheThing bool   `json:"didTheThing"`
	Frequency   string `json:"frequency,omitempty"`
	Context     string `json:"context,omitempty"`
}

// CheckInRecord is one entry in the append-only check-in log. Records are
// never mutated after creation.
type CheckInRecord struct {
	ID            string           `json:"id"`
	ScheduledTime time.Time        `json:"scheduledTime"`
	CompletedAt   *time.Time       `json:"completedAt,omitempty"`
	Missed        bool             `json:"missed"`
	Response      *CheckInResponse `json:"response,omitempty"`
	XPReward      int              `json:"xpReward"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// CheckInState bundles the schedule with the record log under one store key.
type CheckInState struct {
	Schedule *CheckInSchedule `json:"schedule,omitempty"`
	Records  []CheckInRecord  `json:"records"`
}

// TrackerItem is the shared shape for daily goals, ritual steps and setup
// goals: a completable line item with an optional reward.
type TrackerItem struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Order       int        `json:"order"`
	RewardXP    int        `json:"rewardXP,omitempty"`
	RewardCoins int        `json:"rewardCoins,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Tracker is an ordered list of completable items with all-complete
// detection and a daily reset. One instance per collection (daily goals,
// morning ritual, evening ritual, setup goals).
type Tracker struct {
	Items          []TrackerItem `json:"items"`
	SetupCompleted bool          `json:"setupCompleted"`
	// CompletedAt is the collection-level completion timestamp, set when a
	// toggle makes every item complete. Guards the one-time reward.
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type QuestType string

const (
	QuestDaily   QuestType = "daily"
	QuestSpecial QuestType = "special"
)

type Quest struct {
	ID              string     `json:"id"`
	Type            QuestType  `json:"type"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	RewardCoins     int        `json:"rewardCoins"`
	RewardXP        int        `json:"rewardXP"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	DurationMinutes int        `json:"duration,omitempty"`
}

type QuestState struct {
	Quests []Quest `json:"quests"`
}

type ItemType string

const (
	ItemCosmetic ItemType = "cosmetic"
	ItemPowerup  ItemType = "powerup"
)

// ShopItem is a catalog entry. The catalog is static; only the inventory is
// persisted.
type ShopItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Type        ItemType `json:"type"`
	Effect      string   `json:"effect,omitempty"`
	Description string   `json:"description"`
}

type InventoryItem struct {
	ID       string   `json:"id"`
	ItemID   string   `json:"itemId"`
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`
	Equipped bool     `json:"equipped"`
}

type Inventory struct {
	Items []InventoryItem `json:"items"`
}

type MessageType string

const (
	MessageNotification MessageType = "notification"
	MessageCheckIn      MessageType = "checkin"
	MessageLevelUp      MessageType = "level_up"
	MessageQuest        MessageType = "quest"
	MessageGeneral      MessageType = "general"
)

type Message struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Type      MessageType `json:"type"`
	Read      bool        `json:"read"`
	CreatedAt time.Time   `json:"createdAt"`
}

type Inbox struct {
	Messages []Message `json:"messages"`
}

// Profile holds the user- and gnome-facing setup data gathered during
// onboarding: who is quitting what, who the nemesis is and what is at stake.
type Profile struct {
	UserName   string   `json:"userName"`
	GnomeName  string   `json:"gnomeName"`
	GnomeColor string   `json:"gnomeColor"`
	GnomeTone  string   `json:"gnomeTone"`
	Intention  []string `json:"intention"`
	Motivation []string `json:"motivation"`
	Nemesis    string   `json:"nemesis"`
	Wager      float64  `json:"wager"`
	Duration   int      `json:"duration"`
}

var (
	WagerOptions    = []float64{25, 50, 100}
	DurationOptions = []int{7, 14, 30}
	NemesisOptions  = []string{"Big Corporations", "Smug Influencers", "Political Elite"}
)

func DefaultProfile() Profile {
	return Profile{
		GnomeName:  "Slappy",
		GnomeColor: "blue",
		GnomeTone:  "spicy",
		Wager:      50,
		Duration:   14,
	}
}
