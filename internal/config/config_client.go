package config

import "time"

// ClientConfig is the configuration container for the terminal client.
type ClientConfig struct {
	// Adapter holds connection settings for the shelf-viewer server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache settings.
	Storage ClientStorage `envPrefix:"STORAGE_"`
}

// ClientAdapter holds settings for the HTTP adapter the client uses to talk
// to the server.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the shelf-viewer server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single API call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage holds local cache persistence settings.
type ClientStorage struct {
	// DB holds the SQLite cache settings.
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB holds the SQLite connection settings for the offline cache.
type ClientDB struct {
	// DSN is the path of the SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetClientConfig loads and validates the terminal client configuration
// from environment variables and command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	applyClientFlags(cfg)

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "shelf-cache.db"
	}

	return cfg, cfg.validate()
}
