package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Auth error messages
	ErrMsgLoginFailed       = "Login verification failed"
	ErrMsgLoginDataRequired = "init_data is required"

	// State error messages
	ErrMsgGetStateFailed = "Failed to load player state"
)
