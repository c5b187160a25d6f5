package economy

import "time"

// Shift constants
const (
	// ShiftDuration is the fixed length of a work shift
	ShiftDuration = 8 * time.Hour

	// SalaryAmount is the base salary paid when a shift is claimed
	SalaryAmount = 100

	// XPPerShift is the base experience granted when a shift is claimed
	XPPerShift = 100
)

// Leveling formula constants
const (
	// BaseXP is the base value in the level threshold formula:
	// xpForNextLevel = floor(BaseXP * level^LevelExponent)
	BaseXP = 100.0

	// LevelExponent is the exponent in the level threshold formula
	LevelExponent = 1.5
)

// Research constants
const (
	// MaxResearchLevel is the highest reachable level on either track
	MaxResearchLevel = 10

	// ResearchBonusPerLevel is the additive bonus fraction each research
	// level contributes (economic to salary, training to XP)
	ResearchBonusPerLevel = 0.05

	// BaseResearchCost is the cost of reaching research level 1
	BaseResearchCost = 500

	// ResearchCostGrowth multiplies the cost per additional level
	ResearchCostGrowth = 2.5

	// BaseResearchDuration is the duration of researching level 1
	BaseResearchDuration = 24 * time.Hour

	// ResearchDurationGrowth multiplies the duration per additional level
	ResearchDurationGrowth = 1.5
)

// DailyRewardAmounts is the base reward for each consecutive login day.
// 1-based streaks index into it; streaks beyond its length pay the last entry.
var DailyRewardAmounts = []int{50, 75, 100, 125, 150, 200, 300}
