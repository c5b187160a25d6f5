package engine

import (
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// DailyReward describes eligibility for the daily login reward at a given
// observation time. Streak and Amount reflect what a claim right now would
// record and pay.
type DailyReward struct {
	Available bool `json:"available"`
	Streak    int  `json:"streak"`
	Amount    int  `json:"amount"`
}

// DailyRewardStatus evaluates the streak from the calendar-day delta between
// the last claim and now. Same day: already claimed. Next day: streak
// continues. Any gap: streak resets to 1. Eligibility is informational only
// and never gates other engine operations.
func DailyRewardStatus(state *domain.ProgressionState, now time.Time) DailyReward {
	if state.LastRewardClaimTime == nil {
		return DailyReward{Available: true, Streak: 1, Amount: economy.DailyRewardAmount(1)}
	}

	days := calendarDaysBetween(*state.LastRewardClaimTime, now)
	switch {
	case days <= 0:
		return DailyReward{Available: false, Streak: state.DailyStreak, Amount: 0}
	case days == 1:
		streak := state.DailyStreak + 1
		return DailyReward{Available: true, Streak: streak, Amount: economy.DailyRewardAmount(streak)}
	default:
		return DailyReward{Available: true, Streak: 1, Amount: economy.DailyRewardAmount(1)}
	}
}

// ClaimDailyReward credits the reward and records the claim time and the
// (possibly incremented or reset) streak. The reward then stays unavailable
// until the next eligible calendar day.
func ClaimDailyReward(state *domain.ProgressionState, now time.Time) (*DailyReward, error) {
	status := DailyRewardStatus(state, now)
	if !status.Available {
		return nil, domain.ErrRewardUnavailable
	}

	state.Balance += status.Amount
	state.DailyStreak = status.Streak
	claimed := now
	state.LastRewardClaimTime = &claimed
	return &status, nil
}

// calendarDaysBetween counts local calendar-day boundaries between two
// instants, truncating both to midnight so time of day never matters
func calendarDaysBetween(from, to time.Time) int {
	from = from.Local()
	to = to.Local()
	fromMidnight := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toMidnight := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	// Round instead of truncate so DST-shortened or lengthened days still
	// count as exactly one day.
	return int(toMidnight.Sub(fromMidnight).Hours()/24 + 0.5)
}
