package handler

import (
	"net/http"

	"github.com/osse101/Kombinat_Go/internal/domain"
	"github.com/osse101/Kombinat_Go/internal/economy"
)

// CatalogResponse lists every purchasable and joinable entity. The catalog is
// static so clients may cache it.
type CatalogResponse struct {
	Items        []domain.InventoryItem `json:"items"`
	Partnerships []domain.Partnership   `json:"partnerships"`
	Productions  []domain.Production    `json:"productions"`
	DailyRewards []int                  `json:"daily_rewards"`
}

// HandleGetCatalog returns the static game catalog
func HandleGetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CatalogResponse{
			Items:        economy.InventoryItems,
			Partnerships: economy.Partnerships,
			Productions:  economy.Productions,
			DailyRewards: economy.DailyRewardAmounts,
		})
	}
}
