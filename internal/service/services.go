package service

import (
	"fmt"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/crypto"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/validators"
	"github.com/MKhiriev/go-feed/internal/workers"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. The hashing pool and the
// validator are shared.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	pool := workers.NewPool(cfg.Workers.HashingPoolSize)
	logger.Info().Int("size", pool.Size()).Msg("hashing pool ready")

	validator := validators.NewRequestValidator()
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, pool, validator, cfg.App, logger),
		PostService:    NewPostService(storages.PostRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
