package engine

import "math"

const (
	// XPLevelBase and XPLevelGrowth define the per-level requirement:
	// XP to go from level L to L+1 = floor(100 * 1.5^(L-1)).
	XPLevelBase   = 100.0
	XPLevelGrowth = 1.5

	// CheckInXP and CheckInCoins are the fixed rewards for a successful
	// daily check-in.
	CheckInXP    = 50
	CheckInCoins = 10
)

// XPForLevel returns the XP required to advance from the given level to the
// next one. Levels below 1 require nothing.
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return int(math.Floor(XPLevelBase * math.Pow(XPLevelGrowth, float64(level-1))))
}

// LevelInfo is the result of deriving a level from cumulative XP.
type LevelInfo struct {
	Level       int
	XPIntoLevel int
	XPToNext    int
}

// CalculateLevel derives the level for a cumulative XP total by walking the
// curve upward. The derived level is monotonic in xp and never below 1.
func CalculateLevel(xp int) LevelInfo {
	if xp < 0 {
		xp = 0
	}

	level := 1
	total := 0
	for total+XPForLevel(level) <= xp {
		total += XPForLevel(level)
		level++
	}

	into := xp - total
	return LevelInfo{
		Level:       level,
		XPIntoLevel: into,
		XPToNext:    XPForLevel(level) - into,
	}
}

// ProgressPercent returns the progress-bar percentage for the current level,
// clamped to [0, 100].
func ProgressPercent(xpIntoLevel, xpNeeded int) float64 {
	if xpNeeded <= 0 {
		return 0
	}
	pct := float64(xpIntoLevel) / float64(xpNeeded) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
