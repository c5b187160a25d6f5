package identity

import "time"

// Verification parameters
const (
	// DefaultMaxAuthAge is how old a signed login payload may be before it
	// is rejected as stale
	DefaultMaxAuthAge = 24 * time.Hour

	// webAppSecretConstant keys the derivation of the signing secret from
	// the bot token, per the Telegram Mini App verification scheme
	webAppSecretConstant = "WebAppData"
)

// Init data field names
const (
	FieldHash     = "hash"
	FieldAuthDate = "auth_date"
	FieldUser     = "user"
)

// Error messages
const (
	ErrMsgMissingHash     = "login payload has no hash"
	ErrMsgBadSignature    = "login payload signature mismatch"
	ErrMsgStaleAuth       = "login payload is too old"
	ErrMsgMissingUser     = "login payload has no user"
	ErrMsgMalformedPayload = "malformed login payload"
)
