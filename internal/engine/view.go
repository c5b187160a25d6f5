package engine

import (
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// ActiveResearchView carries the running research with its derived remaining
// time for presentation
type ActiveResearchView struct {
	Type        domain.ResearchType `json:"type"`
	EndTime     time.Time           `json:"end_time"`
	RemainingMS int64               `json:"remaining_ms"`
}

// StateView is the derived, read-only projection handed to presentation.
// Every time-dependent number in it is recomputed at observation time so
// callers never cache countdowns.
type StateView struct {
	Balance        int `json:"balance"`
	Level          int `json:"level"`
	Experience     int `json:"experience"`
	XPForNextLevel int `json:"xp_for_next_level"`

	ShiftPhase       domain.ShiftPhase `json:"shift_phase"`
	ShiftEndTime     *time.Time        `json:"shift_end_time,omitempty"`
	ShiftRemainingMS int64             `json:"shift_remaining_ms"`

	Researches     map[domain.ResearchType]domain.Research `json:"researches"`
	ActiveResearch *ActiveResearchView                     `json:"active_research,omitempty"`

	Inventory         []string `json:"inventory"`
	OwnedPartnerships []string `json:"owned_partnerships"`
	Production        string   `json:"production,omitempty"`

	UnclaimedIncome float64     `json:"unclaimed_income"`
	DailyReward     DailyReward `json:"daily_reward"`
}

// View projects the state at the given observation time
func View(state *domain.ProgressionState, now time.Time) StateView {
	researches := make(map[domain.ResearchType]domain.Research, len(state.Researches))
	for typ, r := range state.Researches {
		researches[typ] = r
	}

	v := StateView{
		Balance:           state.Balance,
		Level:             state.Level,
		Experience:        state.Experience,
		XPForNextLevel:    economy.XPForNextLevel(state.Level),
		ShiftPhase:        ShiftPhase(state, now),
		ShiftEndTime:      state.ShiftEndTime,
		ShiftRemainingMS:  ShiftRemaining(state, now).Milliseconds(),
		Researches:        researches,
		Inventory:         state.Inventory.Values(),
		OwnedPartnerships: state.OwnedPartnerships.Values(),
		Production:        state.Production,
		UnclaimedIncome:   UnclaimedIncome(state, now),
		DailyReward:       DailyRewardStatus(state, now),
	}
	if active := state.ActiveResearch; active != nil {
		v.ActiveResearch = &ActiveResearchView{
			Type:        active.Type,
			EndTime:     active.EndTime,
			RemainingMS: ResearchRemaining(state, now).Milliseconds(),
		}
	}
	return v
}
