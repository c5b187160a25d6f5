package domain

// InventoryItem is a one-time purchasable piece of gear granting a
// permanent salary bonus fraction
type InventoryItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Bonus       float64 `json:"bonus"` // e.g. 0.02 for +2% salary
	Cost        int     `json:"cost"`
	Icon        string  `json:"icon"`
}

// Partnership is a one-time purchasable asset accruing claimable passive
// income proportional to elapsed time
type Partnership struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	DailyIncome int    `json:"daily_income"`
	Icon        string `json:"icon"`
}

// Production is a permanent one-time affiliation choice
type Production struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
