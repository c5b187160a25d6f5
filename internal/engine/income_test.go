package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Kombinat_Go/internal/domain"
)

func ownPartnership(t *testing.T, state *domain.ProgressionState, id string, anchor time.Time) {
	t.Helper()
	state.OwnedPartnerships.Add(id)
	state.LastCollectionTime = &anchor
}

func TestUnclaimedIncome(t *testing.T) {
	state := domain.NewProgressionState()
	// scrap pays 200/day; 12 hours ago -> ~100 accrued
	ownPartnership(t, state, "scrap", testNow.Add(-12*time.Hour))

	assert.InDelta(t, 100, UnclaimedIncome(state, testNow), 1e-6)
}

func TestUnclaimedIncome_SumsOwnedPartnerships(t *testing.T) {
	state := domain.NewProgressionState()
	ownPartnership(t, state, "scrap", testNow.Add(-24*time.Hour)) // 200/day
	state.OwnedPartnerships.Add("taxi")                           // 1100/day

	assert.InDelta(t, 1300, UnclaimedIncome(state, testNow), 1e-6)
}

func TestUnclaimedIncome_ZeroCases(t *testing.T) {
	state := domain.NewProgressionState()
	assert.Zero(t, UnclaimedIncome(state, testNow), "no partnerships owned")

	// Owned but no anchor (corrupted snapshot): zero, not a panic
	state.OwnedPartnerships.Add("scrap")
	assert.Zero(t, UnclaimedIncome(state, testNow))

	// Anchor in the future yields zero, never negative
	future := testNow.Add(time.Hour)
	state.LastCollectionTime = &future
	assert.Zero(t, UnclaimedIncome(state, testNow))
}

func TestClaimPassiveIncome(t *testing.T) {
	state := domain.NewProgressionState()
	ownPartnership(t, state, "scrap", testNow.Add(-12*time.Hour))

	claimed, err := ClaimPassiveIncome(state, testNow)
	require.NoError(t, err)
	assert.Equal(t, 100, claimed, "floored to whole units")
	assert.Equal(t, 100, state.Balance)
	assert.Equal(t, testNow, *state.LastCollectionTime, "anchor reset to claim time")

	// Immediately re-querying yields ~0: the remainder is discarded
	assert.InDelta(t, 0, UnclaimedIncome(state, testNow), 1e-9)
}

func TestClaimPassiveIncome_BelowOneUnit(t *testing.T) {
	state := domain.NewProgressionState()
	// 200/day accrues under one unit in 5 minutes
	anchor := testNow.Add(-5 * time.Minute)
	ownPartnership(t, state, "scrap", anchor)

	_, err := ClaimPassiveIncome(state, testNow)
	assert.ErrorIs(t, err, domain.ErrNothingToCollect)
	assert.Equal(t, 0, state.Balance)
	assert.Equal(t, anchor, *state.LastCollectionTime, "anchor untouched on rejection")
}
