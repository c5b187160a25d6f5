package engine

import (
	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// Sanitize repairs a loaded snapshot field by field so a session can always
// start: out-of-range numbers are clamped, missing collections become empty,
// unknown catalog ids are dropped, and an impossible active research is
// cleared. Loading never fails for one bad field.
func Sanitize(state *domain.ProgressionState) *domain.ProgressionState {
	if state == nil {
		return domain.NewProgressionState()
	}

	if state.Balance < 0 {
		state.Balance = 0
	}
	if state.Level < 1 {
		state.Level = 1
	}
	if state.Experience < 0 {
		state.Experience = 0
	}
	// Restore the experience < threshold invariant by carrying overflow
	// into levels, mirroring the claim-time carry loop.
	for state.Experience >= economy.XPForNextLevel(state.Level) {
		state.Experience -= economy.XPForNextLevel(state.Level)
		state.Level++
	}

	if state.DailyStreak < 1 {
		state.DailyStreak = 1
	}

	if state.Researches == nil {
		state.Researches = make(map[domain.ResearchType]domain.Research, len(domain.ResearchTypes))
	}
	for _, typ := range domain.ResearchTypes {
		r := state.Researches[typ]
		if r.Level < 0 {
			r.Level = 0
		}
		if r.Level > economy.MaxResearchLevel {
			r.Level = economy.MaxResearchLevel
		}
		state.Researches[typ] = r
	}
	for typ := range state.Researches {
		if !typ.Valid() {
			delete(state.Researches, typ)
		}
	}

	if active := state.ActiveResearch; active != nil {
		if !active.Type.Valid() || active.EndTime.IsZero() ||
			state.Researches[active.Type].Level >= economy.MaxResearchLevel {
			state.ActiveResearch = nil
		}
	}

	if state.Inventory == nil {
		state.Inventory = domain.NewIDSet()
	}
	for id := range state.Inventory {
		if economy.InventoryItemByID(id) == nil {
			state.Inventory.Remove(id)
		}
	}

	if state.OwnedPartnerships == nil {
		state.OwnedPartnerships = domain.NewIDSet()
	}
	for id := range state.OwnedPartnerships {
		if economy.PartnershipByID(id) == nil {
			state.OwnedPartnerships.Remove(id)
		}
	}
	if len(state.OwnedPartnerships) == 0 {
		state.LastCollectionTime = nil
	}

	if state.Production != "" && economy.ProductionByID(state.Production) == nil {
		state.Production = ""
	}

	return state
}
