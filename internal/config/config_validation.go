package config

import "time"

// Fallback values applied by applyDefaults when no source set the field.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second

	defaultTokenIssuer   = "go-post-board"
	defaultTokenDuration = 24 * time.Hour
	defaultLoginLatency  = 500 * time.Millisecond

	// defaultTokenSignKey is a development-only key. Any real deployment
	// must override it via APP_TOKEN_SIGN_KEY or -token-sign-key.
	defaultTokenSignKey = "dev-insecure-sign-key"

	defaultStorageDriver = DriverFile
	defaultStorageFile   = "post-board-session.json"

	defaultUpstreamBaseURL = "https://jsonplaceholder.typicode.com"
	defaultUpstreamTimeout = 10 * time.Second
)

// Supported storage driver names.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// applyDefaults fills every unset field with its documented fallback so
// the application starts with zero configuration.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = defaultTokenSignKey
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.LoginLatency < 0 {
		cfg.App.LoginLatency = defaultLoginLatency
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}
	if cfg.Storage.Driver == DriverFile && cfg.Storage.FilePath == "" {
		cfg.Storage.FilePath = defaultStorageFile
	}

	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = defaultUpstreamBaseURL
	}
	if cfg.Upstream.RequestTimeout <= 0 {
		cfg.Upstream.RequestTimeout = defaultUpstreamTimeout
	}

	// Cache.TTL deliberately keeps its zero value: the default policy is
	// "re-resolve on every navigation".
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverFile, DriverMemory:
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case DriverRedis:
		if cfg.Storage.RedisAddr == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Upstream.BaseURL == "" {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
