package session

import "time"

// Persistence tuning
const (
	// DefaultSaveDebounce is the minimum interval between snapshot saves
	// for a single player. Mutations inside the window mark the session
	// dirty and ride along with the next save.
	DefaultSaveDebounce = 1 * time.Second
)

// Log messages
const (
	LogMsgStateLoaded       = "Player state loaded"
	LogMsgStateCreated      = "New player state created"
	LogMsgStateRepaired     = "Player state repaired on load"
	LogMsgLoadFailed        = "Failed to load player state, starting from defaults"
	LogMsgSaveFailed        = "Failed to save player state, will retry"
	LogMsgSaveRecovered     = "Player state save recovered after failure"
	LogMsgResearchCompleted = "Research completed"
	LogMsgFlushingSessions  = "Flushing dirty sessions"
	LogMsgFlushFailed       = "Failed to flush session state"
)

// Error messages
const (
	ErrMsgSaveState = "failed to save player state"
)
