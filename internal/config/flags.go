package config

import (
	"flag"
	"time"
)

// ParseFlags parses all server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-anilist-address AniList scraper service base URL
//	-royalroad-address Royal Road scraper service base URL
//	-refresh-interval background refresh interval (0 disables)
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var anilistAddress string
	var royalroadAddress string
	var refreshInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&anilistAddress, "anilist-address", "", "AniList scraper service address")
	flag.StringVar(&royalroadAddress, "royalroad-address", "", "Royal Road scraper service address")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Scrapers: Scrapers{
			AniListAddress:   anilistAddress,
			RoyalRoadAddress: royalroadAddress,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// applyClientFlags overrides empty client config fields from command-line
// flags. Flags lose to environment variables, matching the server priority.
func applyClientFlags(cfg *ClientConfig) {
	var serverAddress string
	var cachePath string
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "s", "", "shelf-viewer server base URL")
	flag.StringVar(&cachePath, "cache", "", "Local cache file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")

	flag.Parse()

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = serverAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = requestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = cachePath
	}
}
