package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-post-board application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session token
	// parameters and the simulated login latency.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the session persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Upstream holds configuration for the posts API the loader fetches
	// from.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// Cache holds the query cache freshness and eviction settings.
	Cache Cache `envPrefix:"CACHE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling the session
// token lifecycle and the demo login behavior.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session
	// token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid
	// after issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LoginLatency is the artificial delay applied to login and logout,
	// imitating a round trip to a real identity backend. Set to 0 to
	// disable (tests do).
	// Env: APP_LOGIN_LATENCY
	LoginLatency time.Duration `env:"LOGIN_LATENCY"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the session persistence backend. Exactly one
// backend is active, selected by Driver.
type Storage struct {
	// Driver selects the persistence backend: "file", "sqlite",
	// "postgres", "redis", or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// FilePath is the JSON snapshot path used by the "file" driver.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// DSN is the connection string used by the "sqlite" and "postgres"
	// drivers (a file path for sqlite, a postgres:// URI for postgres).
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// RedisAddr is the host:port of the Redis instance used by the
	// "redis" driver.
	// Env: STORAGE_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`
}

// Upstream holds configuration for the external posts API.
type Upstream struct {
	// BaseURL is the root URL of the posts API
	// (e.g. "https://jsonplaceholder.typicode.com").
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for upstream fetches.
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds the query cache policy.
type Cache struct {
	// TTL is how long a resolved cache entry stays fresh. The default of
	// 0 means every navigation re-resolves its data; concurrent requests
	// for the same key are still coalesced into one fetch.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// EvictInterval is how often the background janitor sweeps stale
	// entries. 0 disables the janitor, which is the right setting when
	// TTL is 0 (entries are overwritten in place).
	// Env: CACHE_EVICT_INTERVAL
	EvictInterval time.Duration `env:"EVICT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
