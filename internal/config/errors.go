package config

import "errors"

// Validation errors returned when required configuration is incomplete.
var (
	// ErrMissingTokenSignKey indicates no JWT signing secret was provided
	// by any configuration source.
	ErrMissingTokenSignKey = errors.New("token signing key is not configured")

	// ErrMissingDatabaseDSN indicates no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs indicates invalid client cache settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
