package gnome

import "math/rand"

var dashboardLines = map[Tone][]string{
	ToneSoft: {
		"Another day, another chance.",
		"Progress or excuses today?",
		"I woke up for this.",
		"Quests await. Don't embarrass us.",
	},
	ToneSpicy: {
		"You're awake. Barely.",
		"Let's see you do something.",
		"Three goals left. Chop chop.",
		"Don't slack off. Don't ruin my day.",
	},
	ToneCursed: {
		"Failure smells. Don't make me inhale it.",
		"Nemesis is salivating. Don't feed them.",
		"I hunger for XP. Don't starve me.",
		"Destiny calls... so does laziness.",
	},
}

var fallbackLines = map[Context][]string{
	ContextCheckInSuccess: {
		"Boom. Consistency is the best revenge.",
		"You did the thing! Your nemesis is probably crying into their expensive latte.",
		"Well done. The garden thrives on your discipline.",
	},
	ContextCheckInFail: {
		"Oof. Right in the wallet. Your nemesis sends their thanks.",
		"Don't let them win. This is just a setback.",
		"A costly mistake. Now make your promise.",
	},
	ContextQuestComplete: {
		"Quest complete! Nice work.",
		"Another victory for the books.",
		"You're on a roll!",
	},
	ContextLevelUp: {
		"Level up! You're getting stronger.",
		"Congratulations! You've leveled up!",
		"New level unlocked! Keep going!",
	},
}

// Fallback returns a pseudorandom canned line for the (context, tone) pair.
func (m *Messenger) Fallback(c Context, tone Tone) string {
	var lines []string
	if c == ContextDashboard {
		lines = dashboardLines[tone]
	} else {
		lines = fallbackLines[c]
	}
	if len(lines) == 0 {
		return "Hello there."
	}
	if m.rand != nil {
		return lines[m.rand.Intn(len(lines))]
	}
	return lines[rand.Intn(len(lines))]
}
