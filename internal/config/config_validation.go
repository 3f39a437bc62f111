// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged server config. In development a missing
// signing secret is replaced with [InsecureDevTokenSignKey]; callers detect
// that with [App.UsesInsecureDevKey] and warn.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		if cfg.App.Env != EnvDevelopment {
			return ErrMissingTokenSignKey
		}
		cfg.App.TokenSignKey = InsecureDevTokenSignKey
	}

	if cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: empty token issuer", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	return nil
}

// UsesInsecureDevKey reports whether the well-known development secret is
// signing tokens.
func (a App) UsesInsecureDevKey() bool {
	return a.TokenSignKey == InsecureDevTokenSignKey
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
