// Package engine implements the progression rules as pure transitions over
// a ProgressionState and an explicit observation time. Nothing here reads
// the clock or performs I/O; every time-derived quantity is recomputed from
// absolute timestamps so state survives being unloaded and reloaded
// mid-shift or mid-research.
package engine

import (
	"math"
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// SalaryResult is the outcome of claiming a completed shift
type SalaryResult struct {
	Salary       int  `json:"salary"`
	XPGained     int  `json:"xp_gained"`
	LevelsGained int  `json:"levels_gained"`
	NewLevel     int  `json:"new_level"`
	LeveledUp    bool `json:"leveled_up"`
}

// ShiftPhase derives the shift lifecycle state from the stored end time.
// A reload mid-shift resumes correctly because nothing but the absolute end
// time is stored.
func ShiftPhase(state *domain.ProgressionState, now time.Time) domain.ShiftPhase {
	if state.ShiftEndTime == nil {
		return domain.ShiftIdle
	}
	if now.Before(*state.ShiftEndTime) {
		return domain.ShiftActive
	}
	return domain.ShiftOver
}

// ShiftRemaining returns the time left on an active shift, zero otherwise
func ShiftRemaining(state *domain.ProgressionState, now time.Time) time.Duration {
	if ShiftPhase(state, now) != domain.ShiftActive {
		return 0
	}
	return state.ShiftEndTime.Sub(now)
}

// StartShift begins a shift ending ShiftDuration from now. Legal only from
// the idle phase.
func StartShift(state *domain.ProgressionState, now time.Time) error {
	if state.ShiftEndTime != nil {
		return domain.ErrShiftAlreadyActive
	}
	end := now.Add(economy.ShiftDuration)
	state.ShiftEndTime = &end
	return nil
}

// ClaimSalary pays out a completed shift: salary scaled by the economic
// research bonus plus owned-gear bonuses, XP scaled by the training research
// bonus, with level-ups carried while thresholds are crossed. Clearing the
// end time is the idempotence guard; a second claim is rejected.
func ClaimSalary(state *domain.ProgressionState, now time.Time) (*SalaryResult, error) {
	switch ShiftPhase(state, now) {
	case domain.ShiftIdle:
		return nil, domain.ErrNoShiftToClaim
	case domain.ShiftActive:
		return nil, domain.ErrShiftNotOver
	}

	researchBonus := float64(state.Researches[domain.ResearchEconomic].Level) * economy.ResearchBonusPerLevel
	inventoryBonus := 0.0
	for _, item := range economy.InventoryItems {
		if state.Inventory.Has(item.ID) {
			inventoryBonus += item.Bonus
		}
	}
	salary := int(math.Round(economy.SalaryAmount * (1 + researchBonus + inventoryBonus)))

	xpBonus := 1 + float64(state.Researches[domain.ResearchTraining].Level)*economy.ResearchBonusPerLevel
	xp := int(math.Round(economy.XPPerShift * xpBonus))

	state.Balance += salary
	levels := grantXP(state, xp)
	state.ShiftEndTime = nil

	return &SalaryResult{
		Salary:       salary,
		XPGained:     xp,
		LevelsGained: levels,
		NewLevel:     state.Level,
		LeveledUp:    levels > 0,
	}, nil
}

// grantXP adds experience and applies the carry loop: while the threshold is
// crossed, subtract it and advance a level. A single grant may advance
// several levels. Returns the number of levels gained.
func grantXP(state *domain.ProgressionState, xp int) int {
	state.Experience += xp
	levels := 0
	for state.Experience >= economy.XPForNextLevel(state.Level) {
		state.Experience -= economy.XPForNextLevel(state.Level)
		state.Level++
		levels++
	}
	return levels
}
