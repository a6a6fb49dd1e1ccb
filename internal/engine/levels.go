package engine

// levelThresholds[i] is the lifetime crystal total required to hold level i+1.
// Beyond the table the account stays at the top level.
var levelThresholds = [...]int64{0, 150, 400, 750, 1200, 1750, 2400, 3000, 4200, 5500}

// MaxLevel is the highest reachable level.
const MaxLevel = len(levelThresholds)

// LevelForCrystals returns the level held at the given lifetime total.
func LevelForCrystals(total int64) int {
	level := 1
	for i, threshold := range levelThresholds {
		if total >= threshold {
			level = i + 1
		}
	}
	return level
}

// NextLevelThreshold returns the total required for the level after the
// given one, or the top threshold when already at MaxLevel.
func NextLevelThreshold(level int) int64 {
	if level >= MaxLevel {
		return levelThresholds[MaxLevel-1]
	}
	if level < 1 {
		level = 1
	}
	return levelThresholds[level]
}

// LevelProgress returns total relative to the next level's threshold,
// clamped to [0,1]. This mirrors the balance/next display on the dashboard.
func LevelProgress(total int64) float64 {
	next := NextLevelThreshold(LevelForCrystals(total))
	if next <= 0 {
		return 1
	}
	ratio := float64(total) / float64(next)
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}
