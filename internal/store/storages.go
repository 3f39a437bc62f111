package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
)

// Storages bundles the repositories the services depend on.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository

	closers []io.Closer
}

// NewStorages selects the backend from cfg.DB.DSN, runs migrations for SQL
// backends and, when cfg.Cache.RedisURL is set, fronts the post listing with
// Redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	backend, target := parseDSN(cfg.DB.DSN)
	switch backend {
	case backendMemory:
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		s.UserRepository = NewMemoryUserRepository()
		s.PostRepository = NewMemoryPostRepository()

	case backendPostgres, backendSQLite:
		db, err := connect(ctx, backend, target, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db)

		if err = db.Migrate(); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		s.UserRepository = NewUserRepository(db, log)
		s.PostRepository = NewPostRepository(db, log)

	default:
		return nil, ErrUnsupportedDSN
	}

	if cfg.Cache.RedisURL != "" {
		cache, err := NewRedisPostCache(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("error connecting posts cache: %w", err)
		}
		s.closers = append(s.closers, cache)
		s.PostRepository = NewCachedPostRepository(s.PostRepository, cache)
		log.Info().Msg("posts cache enabled")
	}

	return s, nil
}

// Close releases every connection opened by NewStorages.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	s.closers = nil

	return errors.Join(errs...)
}

type backend int

const (
	backendUnknown backend = iota
	backendMemory
	backendPostgres
	backendSQLite
)

// parseDSN maps a DSN to its backend and the connection target the driver
// expects.
func parseDSN(dsn string) (backend, string) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "" || dsn == "memory":
		return backendMemory, ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return backendPostgres, dsn
	case strings.HasPrefix(dsn, "sqlite://"):
		return backendSQLite, strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"):
		return backendSQLite, strings.TrimPrefix(dsn, "file:")
	default:
		return backendUnknown, ""
	}
}

func connect(ctx context.Context, b backend, target string, log *logger.Logger) (*DB, error) {
	if b == backendPostgres {
		return NewConnectPostgres(ctx, target, log)
	}

	return NewConnectSQLite(ctx, target, log)
}
