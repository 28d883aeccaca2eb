package engine

import (
	"fmt"
	"time"
)

type questTemplate struct {
	id              string
	title           string
	description     string
	rewardCoins     int
	rewardXP        int
	durationMinutes int
}

var dailyQuestTemplates = []questTemplate{
	{
		title:           "Digital Detox",
		description:     "Put your phone away for 30 minutes",
		rewardCoins:     5,
		rewardXP:        25,
		durationMinutes: 30,
	},
	{
		title:           "Stretch Break",
		description:     "Stretch for the next 15 minutes",
		rewardCoins:     5,
		rewardXP:        25,
		durationMinutes: 15,
	},
	{
		title:           "Meditative Moment",
		description:     "Take the next 5 minutes to close your eyes and breathe while limiting any thought.",
		rewardCoins:     5,
		rewardXP:        25,
		durationMinutes: 5,
	},
}

var specialQuestTemplates = []questTemplate{
	{
		id:          "daily-warrior",
		title:       "Daily Warrior",
		description: "Complete daily tasks 3 days in a row",
		rewardCoins: 50,
		rewardXP:    100,
	},
	{
		id:          "morning-marvel",
		title:       "Morning Marvel",
		description: "Complete your morning ritual for 7 days",
		rewardCoins: 75,
		rewardXP:    150,
	},
	{
		id:          "evening-master",
		title:       "Evening Master",
		description: "Complete your evening ritual for 7 days",
		rewardCoins: 75,
		rewardXP:    150,
	},
}

// GenerateDaily refreshes the daily quest pool for the current date:
// incomplete dailies are replaced with fresh copies of the templates while
// completed ones are kept as history. Calling it again on the same day
// yields the same pool.
func (q *QuestState) GenerateDaily(now time.Time) {
	kept := q.Quests[:0]
	for _, quest := range q.Quests {
		if quest.Type == QuestDaily && !quest.Completed {
			continue
		}
		kept = append(kept, quest)
	}
	q.Quests = kept

	day := DateKey(now)
	for i, tmpl := range dailyQuestTemplates {
		id := fmt.Sprintf("daily-%s-%d", day, i)
		if q.find(id) != nil {
			continue
		}
		q.Quests = append(q.Quests, Quest{
			ID:              id,
			Type:            QuestDaily,
			Title:           tmpl.title,
			Description:     tmpl.description,
			RewardCoins:     tmpl.rewardCoins,
			RewardXP:        tmpl.rewardXP,
			CreatedAt:       now,
			DurationMinutes: tmpl.durationMinutes,
		})
	}
}

// GenerateSpecial seeds the fixed long-running quests once.
func (q *QuestState) GenerateSpecial(now time.Time) {
	for _, quest := range q.Quests {
		if quest.Type == QuestSpecial {
			return
		}
	}
	for _, tmpl := range specialQuestTemplates {
		q.Quests = append(q.Quests, Quest{
			ID:          tmpl.id,
			Type:        QuestSpecial,
			Title:       tmpl.title,
			Description: tmpl.description,
			RewardCoins: tmpl.rewardCoins,
			RewardXP:    tmpl.rewardXP,
			CreatedAt:   now,
		})
	}
}

// Complete marks a quest complete and returns it for reward crediting.
// Unknown or already-completed quests return nil.
func (q *QuestState) Complete(id string, now time.Time) *Quest {
	quest := q.find(id)
	if quest == nil || quest.Completed {
		return nil
	}
	quest.Completed = true
	done := now
	quest.CompletedAt = &done
	return quest
}

// Daily returns quests of the daily type.
func (q *QuestState) Daily() []Quest { return q.byType(QuestDaily) }

// Special returns quests of the special type.
func (q *QuestState) Special() []Quest { return q.byType(QuestSpecial) }

func (q *QuestState) byType(t QuestType) []Quest {
	var out []Quest
	for _, quest := range q.Quests {
		if quest.Type == t {
			out = append(out, quest)
		}
	}
	return out
}

func (q *QuestState) find(id string) *Quest {
	for i := range q.Quests {
		if q.Quests[i].ID == id {
			return &q.Quests[i]
		}
	}
	return nil
}
