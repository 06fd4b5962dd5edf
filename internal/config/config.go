// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// RPMTW server. It is populated by merging built-in defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// blob store used for uploaded files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds the admission policy of the rate-limiting gate.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// OAuth holds the OAuth2 provider credentials used by the login relay.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, versioning and logging.
type App struct {
	// TokenSignKey is the secret key used to sign and verify bearer tokens.
	// Must be kept confidential. Startup fails when it is empty.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on verification.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after its
	// issued-at time (e.g. "720h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenClockSkew backdates the issued-at claim to tolerate clock
	// differences between servers.
	// Env: APP_TOKEN_CLOCK_SKEW
	TokenClockSkew time.Duration `env:"TOKEN_CLOCK_SKEW"`

	// Version is the version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the local directory used for blob payloads when no
	// object storage is configured.
	Files Files `envPrefix:"FILES_"`

	// Minio holds the object storage settings for blob payloads.
	Minio Minio `envPrefix:"MINIO_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name. A "postgres://" or "postgresql://" DSN
	// selects PostgreSQL; a "file:" DSN or a path ending in ".db" selects
	// SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for blob payloads.
type Files struct {
	// BinaryDataDir is the directory where uploaded payloads are stored.
	// Env: STORAGE_FILES_BINARY_DATA_DIR
	BinaryDataDir string `env:"BINARY_DATA_DIR"`
}

// Minio holds MinIO / S3-compatible object storage settings.
// Object storage is used when Endpoint is non-empty.
type Minio struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME"`
	UseSSL    bool   `env:"USE_SSL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. The gRPC
	// server is not started when it is empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize is the maximum accepted size in bytes of an uploaded file.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// RateLimit holds the admission policy of the rate-limiting gate.
type RateLimit struct {
	// Quota is the number of requests admitted per client within Window.
	// Env: RATE_LIMIT_QUOTA
	Quota int `env:"QUOTA"`

	// Window is the length of the fixed counting window.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// BlockDuration is how long a client is rejected once it exhausted its
	// quota within a window.
	// Env: RATE_LIMIT_BLOCK_DURATION
	BlockDuration time.Duration `env:"BLOCK_DURATION"`

	// CleanupInterval controls how often idle clients are evicted from the
	// in-process limiter store.
	// Env: RATE_LIMIT_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// Redis switches the limiter to a shared Redis store when its Address
	// is set, so that several server instances share the same counters.
	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds connection settings of the shared limiter store.
type Redis struct {
	Address  string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
}

// OAuth holds OAuth2 provider settings of the login relay.
type OAuth struct {
	// Timeout bounds a single call to the provider.
	// Env: OAUTH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Discord holds the Discord application credentials.
	Discord OAuthProvider `envPrefix:"DISCORD_"`
}

// OAuthProvider holds the credentials of one OAuth2 application.
type OAuthProvider struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURI  string `env:"REDIRECT_URI"`
	TokenURL     string `env:"TOKEN_URL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
