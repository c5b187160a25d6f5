package engine

import (
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// StartResearch begins researching the next level of the given track.
// Exclusivity is global: only one research of any type may run at a time.
// Rejections (max level, exclusivity, funds) leave the state untouched.
func StartResearch(state *domain.ProgressionState, typ domain.ResearchType, now time.Time) error {
	if !typ.Valid() {
		return domain.ErrUnknownResearch
	}
	if state.ActiveResearch != nil {
		return domain.ErrResearchActive
	}
	current := state.Researches[typ].Level
	if current >= economy.MaxResearchLevel {
		return domain.ErrResearchMaxLevel
	}
	cost := economy.ResearchCost(current + 1)
	if state.Balance < cost {
		return domain.ErrInsufficientFunds
	}

	state.Balance -= cost
	state.ActiveResearch = &domain.ActiveResearch{
		Type:    typ,
		EndTime: now.Add(economy.ResearchDuration(current + 1)),
	}
	return nil
}

// CompleteResearch observes the active research against the clock: when the
// end time has passed, the track advances one level and the active slot is
// cleared. Clearing the slot is the guard against double increments, so the
// poll is safe to run any number of times. Returns true when a completion
// was applied.
func CompleteResearch(state *domain.ProgressionState, now time.Time) bool {
	active := state.ActiveResearch
	if active == nil || now.Before(active.EndTime) {
		return false
	}

	r := state.Researches[active.Type]
	if r.Level < economy.MaxResearchLevel {
		r.Level++
	}
	state.Researches[active.Type] = r
	state.ActiveResearch = nil
	return true
}

// ResearchRemaining returns the time left on the active research, zero when
// none is running or it has already finished
func ResearchRemaining(state *domain.ProgressionState, now time.Time) time.Duration {
	if state.ActiveResearch == nil || !now.Before(state.ActiveResearch.EndTime) {
		return 0
	}
	return state.ActiveResearch.EndTime.Sub(now)
}
