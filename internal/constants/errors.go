package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured = errors.New("no access token configured, use 'tictail login' or --token")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrTokenRequired     = errors.New("access token is required")
)

// Command errors.
var (
	ErrStoreRequired     = errors.New("store is required (use --store or set 'store' in config)")
	ErrInvalidJSONData   = errors.New("--data must be a JSON object")
	ErrInvalidTimeFilter = errors.New("time filters must be ISO-8601 (2006-01-02T15:04:05)")
	ErrDeleteFailed      = errors.New("API did not confirm the deletion")
)
