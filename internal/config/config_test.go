package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost with port", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ip with port", input: "127.0.0.1:9000", wantHost: "127.0.0.1", wantPort: 9000},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad ip", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestApplyDefaults_ZeroConfig(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, defaultStorageFile, cfg.Storage.FilePath)
	assert.Equal(t, defaultUpstreamBaseURL, cfg.Upstream.BaseURL)

	// The default cache policy re-resolves every navigation.
	assert.Equal(t, time.Duration(0), cfg.Cache.TTL)

	require.NoError(t, cfg.validate())
}

func TestValidate_TableTest(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := &StructuredConfig{}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "unknown storage driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = "etcd" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "sqlite driver without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverSQLite },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "redis driver without address",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverRedis },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "postgres driver with dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Driver = DriverPostgres
				cfg.Storage.DSN = "postgres://localhost:5432/board"
			},
		},
		{
			name:    "empty upstream base url",
			mutate:  func(cfg *StructuredConfig) { cfg.Upstream.BaseURL = "" },
			wantErr: ErrInvalidUpstreamConfigs,
		},
		{
			name:    "empty sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseJSON_FullFile(t *testing.T) {
	raw := `{
		"app": {
			"token_sign_key": "json-key",
			"token_issuer": "json-issuer",
			"token_duration": "2h",
			"login_latency": "250ms"
		},
		"server": {"http_address": "localhost:9090", "request_timeout": "45s"},
		"storage": {"driver": "redis", "redis_addr": "localhost:6379"},
		"upstream": {"base_url": "http://posts.local", "request_timeout": "5s"},
		"cache": {"ttl": "1m", "evict_interval": "5m"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 250*time.Millisecond, cfg.App.LoginLatency)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "http://posts.local", cfg.Upstream.BaseURL)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:7070")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("CACHE_TTL", "30s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
