package engine

import (
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// PurchaseItem buys a catalog item. Items are permanent, non-stacking, with
// no sell-back; buying an owned or unknown item is rejected with no state
// change.
func PurchaseItem(state *domain.ProgressionState, itemID string) error {
	item := economy.InventoryItemByID(itemID)
	if item == nil {
		return domain.ErrItemNotFound
	}
	if state.Inventory.Has(itemID) {
		return domain.ErrAlreadyOwned
	}
	if state.Balance < item.Cost {
		return domain.ErrInsufficientFunds
	}

	state.Balance -= item.Cost
	state.Inventory.Add(itemID)
	return nil
}

// PurchasePartnership buys a passive-income asset. The first purchase
// initializes the accrual anchor; later purchases must not touch it so
// accrual already in flight is preserved.
func PurchasePartnership(state *domain.ProgressionState, partnershipID string, now time.Time) error {
	p := economy.PartnershipByID(partnershipID)
	if p == nil {
		return domain.ErrPartnershipNotFound
	}
	if state.OwnedPartnerships.Has(partnershipID) {
		return domain.ErrAlreadyOwned
	}
	if state.Balance < p.Cost {
		return domain.ErrInsufficientFunds
	}

	if len(state.OwnedPartnerships) == 0 {
		anchor := now
		state.LastCollectionTime = &anchor
	}
	state.Balance -= p.Cost
	state.OwnedPartnerships.Add(partnershipID)
	return nil
}

// JoinProduction sets the permanent production affiliation. There is no
// leave or switch operation; a second join is rejected.
func JoinProduction(state *domain.ProgressionState, productionID string) error {
	if economy.ProductionByID(productionID) == nil {
		return domain.ErrProductionNotFound
	}
	if state.Production != "" {
		return domain.ErrProductionJoined
	}
	state.Production = productionID
	return nil
}
