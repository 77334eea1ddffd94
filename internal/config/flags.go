package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-storage-driver session storage backend (file|sqlite|postgres|redis|memory)
//	-storage-file session snapshot file path (file driver)
//	-d database DSN (sqlite/postgres drivers)
//	-redis-addr redis address (redis driver)
//	-upstream-url base URL of the posts API
//	-upstream-timeout upstream request timeout (e.g., "10s")
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-login-latency simulated login/logout latency (e.g., "500ms")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-cache-ttl cache entry freshness window (0 re-resolves every navigation)
//	-cache-evict-interval janitor sweep interval (0 disables the janitor)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var storageDriver string
	var storageFilePath string
	var databaseDSN string
	var redisAddr string
	var upstreamURL string
	var upstreamTimeout time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var loginLatency time.Duration
	var requestTimeout time.Duration
	var cacheTTL time.Duration
	var cacheEvictInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&storageDriver, "storage-driver", "", "Session storage driver (file|sqlite|postgres|redis|memory)")
	flag.StringVar(&storageFilePath, "storage-file", "", "Session snapshot file path")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")
	flag.StringVar(&upstreamURL, "upstream-url", "", "Posts API base URL")
	flag.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 10s)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&loginLatency, "login-latency", 0, "Simulated login/logout latency (e.g., 500ms)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Cache entry freshness window")
	flag.DurationVar(&cacheEvictInterval, "cache-evict-interval", 0, "Cache janitor sweep interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LoginLatency:  loginLatency,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Driver:    storageDriver,
			FilePath:  storageFilePath,
			DSN:       databaseDSN,
			RedisAddr: redisAddr,
		},
		Upstream: Upstream{
			BaseURL:        upstreamURL,
			RequestTimeout: upstreamTimeout,
		},
		Cache: Cache{
			TTL:           cacheTTL,
			EvictInterval: cacheEvictInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
