package engine

import (
	"math"
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// UnclaimedIncome computes accrued passive income as a continuous function
// of elapsed time since the anchor: (now - anchor) / 24h * sum(dailyIncome).
// It is derived and never persisted, so it stays exact across restarts.
func UnclaimedIncome(state *domain.ProgressionState, now time.Time) float64 {
	if state.LastCollectionTime == nil || len(state.OwnedPartnerships) == 0 {
		return 0
	}
	total := 0
	for _, p := range economy.Partnerships {
		if state.OwnedPartnerships.Has(p.ID) {
			total += p.DailyIncome
		}
	}
	elapsed := now.Sub(*state.LastCollectionTime)
	if elapsed <= 0 {
		return 0
	}
	return elapsed.Hours() / 24 * float64(total)
}

// ClaimPassiveIncome credits the floored accrual and resets the anchor.
// The sub-unit remainder is discarded, not carried over. Claiming with less
// than one whole unit accrued is rejected with no state change.
func ClaimPassiveIncome(state *domain.ProgressionState, now time.Time) (int, error) {
	claimable := int(math.Floor(UnclaimedIncome(state, now)))
	if claimable <= 0 {
		return 0, domain.ErrNothingToCollect
	}

	state.Balance += claimable
	anchor := now
	state.LastCollectionTime = &anchor
	return claimable, nil
}
