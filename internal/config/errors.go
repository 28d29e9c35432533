package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidRelayConfigs indicates an unusable relay URL or timeout.
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
	// ErrInvalidStorageConfigs indicates an empty history DSN or a
	// non-positive history limit.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
