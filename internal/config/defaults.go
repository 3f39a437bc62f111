package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DefaultTokenIssuer      = "go-feed"
	DefaultPasswordHashCost = 10
	DefaultHTTPAddress      = ":5000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultCacheTTL         = time.Minute

	DefaultAdapterAddress = "http://localhost:5000"
	DefaultAdapterTimeout = 15 * time.Second

	tokenFileName = ".go-feed-token"
)

// InsecureDevTokenSignKey is substituted for a missing signing secret when
// APP_ENV=development. Tokens signed with it are forgeable by anyone who
// has read this source file.
const InsecureDevTokenSignKey = "insecure-development-only-token-sign-key"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			PasswordHashCost: DefaultPasswordHashCost,
			Env:              EnvProduction,
			Version:          "dev",
		},
		Storage: Storage{
			Cache: Cache{TTL: DefaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
			TokenFile:      defaultTokenFile(),
		},
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return tokenFileName
	}

	return filepath.Join(home, tokenFileName)
}
