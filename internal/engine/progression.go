package engine

import (
	"strings"
	"time"
)

// FulfillmentPhrase is the exact confirmation the user must type after a
// failed check-in to restore the garden without a new check-in.
const FulfillmentPhrase = "I will tend my garden"

// AddXP adds XP and re-derives the level from the curve. Returns true when
// the addition crossed a level boundary.
func (p *ProgressionState) AddXP(amount int) bool {
	before := p.Level
	p.XP += amount
	if p.XP < 0 {
		p.XP = 0
	}

	info := CalculateLevel(p.XP)
	p.Level = info.Level
	p.XPToNext = info.XPToNext
	return p.Level > before
}

// AddCoins credits coins, flooring at zero.
func (p *ProgressionState) AddCoins(amount int) {
	p.Coins += amount
	if p.Coins < 0 {
		p.Coins = 0
	}
}

// CheckInSuccess applies a successful check-in: fixed XP and coin rewards,
// garden back to healthy, streak and day advance. Returns whether the XP
// reward caused a level-up.
func (p *ProgressionState) CheckInSuccess(now time.Time) bool {
	levelUp := p.AddXP(CheckInXP)
	p.AddCoins(CheckInCoins)

	p.GardenState = GardenHealthy
	p.Streak++
	p.Day++
	p.LastCheckInDate = DateKey(now)
	p.CheckedInToday = true
	return levelUp
}

// CheckInFail applies a failed check-in: the garden fails, the streak resets
// and the penalty is added to the lost stake. XP and coins are untouched;
// failure withholds the reward rather than charging one.
func (p *ProgressionState) CheckInFail(penalty float64, now time.Time) {
	if penalty < 0 {
		penalty = 0
	}

	p.GardenState = GardenFailing
	p.Streak = 0
	p.StakeLost += penalty
	p.Day++
	p.LastCheckInDate = DateKey(now)
	p.CheckedInToday = true
}

// ResetDailyCheckIn clears the checked-in-today flag once the calendar date
// has rolled past the last check-in. Safe to call any number of times per
// day.
func (p *ProgressionState) ResetDailyCheckIn(now time.Time) {
	if p.LastCheckInDate != DateKey(now) {
		p.CheckedInToday = false
	}
}

// FulfillPromise restores a failing garden when the user types the exact
// fulfillment phrase. Returns true when the garden transitioned.
func (p *ProgressionState) FulfillPromise(phrase string) bool {
	if strings.TrimSpace(phrase) != FulfillmentPhrase {
		return false
	}
	if p.GardenState != GardenFailing {
		return false
	}
	p.GardenState = GardenHealthy
	return true
}
