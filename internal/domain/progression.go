package domain

import "time"

// ResearchType identifies an upgrade track
type ResearchType string

const (
	ResearchEconomic ResearchType = "economic"
	ResearchTraining ResearchType = "training"
)

// ResearchTypes lists every known track in a stable order
var ResearchTypes = []ResearchType{ResearchEconomic, ResearchTraining}

// Valid reports whether the research type is a known track
func (t ResearchType) Valid() bool {
	return t == ResearchEconomic || t == ResearchTraining
}

// ShiftPhase represents the state of the work-shift lifecycle
type ShiftPhase string

const (
	ShiftIdle   ShiftPhase = "idle"
	ShiftActive ShiftPhase = "on_shift"
	ShiftOver   ShiftPhase = "shift_over"
)

// Research tracks progress on a single upgrade track
type Research struct {
	Level int `json:"level"`
}

// ActiveResearch is the single research in flight, if any.
// The end time is absolute; remaining time is always derived from it.
type ActiveResearch struct {
	Type    ResearchType `json:"type"`
	EndTime time.Time    `json:"end_time"`
}

// ProgressionState is the canonical per-player game snapshot.
// Exactly one in-memory copy exists per active session and it is mutated
// only through validated engine transitions.
type ProgressionState struct {
	Balance    int `json:"balance"`
	Level      int `json:"level"`
	Experience int `json:"experience"`

	// ShiftEndTime is set while a shift is active or awaiting claim;
	// nil means idle. The shift phase is re-derived from it on every read.
	ShiftEndTime *time.Time `json:"shift_end_time,omitempty"`

	DailyStreak         int        `json:"daily_streak"`
	LastRewardClaimTime *time.Time `json:"last_reward_claim_time,omitempty"`

	Researches     map[ResearchType]Research `json:"researches"`
	ActiveResearch *ActiveResearch           `json:"active_research,omitempty"`

	Inventory         IDSet `json:"inventory"`
	OwnedPartnerships IDSet `json:"owned_partnerships"`

	// LastCollectionTime anchors passive-income accrual. Set on the first
	// partnership purchase and reset on every income claim.
	LastCollectionTime *time.Time `json:"last_collection_time,omitempty"`

	// Production is the permanent production affiliation, empty until joined
	Production string `json:"production,omitempty"`
}

// NewProgressionState returns the first-login default state
func NewProgressionState() *ProgressionState {
	return &ProgressionState{
		Balance:     0,
		Level:       1,
		Experience:  0,
		DailyStreak: 1,
		Researches: map[ResearchType]Research{
			ResearchEconomic: {Level: 0},
			ResearchTraining: {Level: 0},
		},
		Inventory:         NewIDSet(),
		OwnedPartnerships: NewIDSet(),
	}
}
