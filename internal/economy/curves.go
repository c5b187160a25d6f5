package economy

import (
	"math"
	"time"
)

// XPForNextLevel returns the experience threshold to advance past the given
// level: floor(100 * level^1.5)
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseXP * math.Pow(float64(level), LevelExponent)))
}

// ResearchCost returns the cost of reaching research level n (n >= 1):
// floor(500 * 2.5^(n-1))
func ResearchCost(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseResearchCost * math.Pow(ResearchCostGrowth, float64(level-1))))
}

// ResearchDuration returns the time to research level n (n >= 1):
// floor(24h * 1.5^(n-1)), floored to whole milliseconds
func ResearchDuration(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := math.Floor(float64(BaseResearchDuration.Milliseconds()) * math.Pow(ResearchDurationGrowth, float64(level-1)))
	return time.Duration(ms) * time.Millisecond
}

// DailyRewardAmount returns the reward for a 1-based streak day, clamped to
// the last scheduled entry for longer streaks
func DailyRewardAmount(streak int) int {
	idx := streak - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(DailyRewardAmounts) {
		idx = len(DailyRewardAmounts) - 1
	}
	return DailyRewardAmounts[idx]
}
