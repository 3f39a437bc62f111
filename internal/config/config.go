// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for go-feed.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, environment variables, command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, hashing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database and the optional feed cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and CORS settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the command line client uses to reach
	// the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the hashing worker pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify session
	// tokens. Never logged.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"-"`

	// TokenIssuer is the "iss" claim embedded in and required on every
	// session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Env is the deployment environment ("production", "development").
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the optional Redis feed cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the credential and post store.
type DB struct {
	// DSN selects the backend by its scheme:
	//   - postgres://… or postgresql://…  PostgreSQL via pgx
	//   - sqlite://path or file:path      SQLite via go-sqlite3
	//   - empty or "memory"               in-process maps
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"-"`
}

// Cache holds the Redis feed cache settings. An empty RedisURL disables it.
type Cache struct {
	// Env: STORAGE_CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL" json:"-"`

	// TTL bounds how long a cached feed listing may be served.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "[host]:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS allow-list; "*" allows any origin.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds the command line client's view of the server.
type Adapter struct {
	// HTTPAddress is the base URL of the go-feed server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenFile is where the client keeps the last session token.
	// Env: ADAPTER_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// Workers holds the hashing pool settings.
type Workers struct {
	// HashingPoolSize caps concurrent password hash/verify jobs; zero
	// means one slot per CPU.
	// Env: WORKERS_HASHING_POOL_SIZE
	HashingPoolSize int `env:"HASHING_POOL_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// in the following priority order (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags from os.Args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
