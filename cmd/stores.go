package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"finance-engine/config"
	"finance-engine/repository"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type closer func() error

// openCache builds the result cache selected in the configuration
func openCache(ctx context.Context, cfg config.CacheConfig) (repository.CacheRepository, closer, error) {
	switch cfg.Driver {
	case "redis":
		cache := repository.NewRedisCache(cfg.RedisAddr, cfg.TTL.Duration)

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			// the service runs without cache hits until redis is reachable
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis is not reachable")
		}
		return cache, cache.Close, nil
	case "memory":
		return repository.NewMemoryCache(cfg.TTL.Duration, cfg.Capacity), func() error { return nil }, nil
	}
	return nil, nil, errors.Errorf("unknown cache driver %q", cfg.Driver)
}

// openStore builds the calculation history store selected in the configuration
func openStore(cfg config.StoreConfig) (repository.CalculationRepository, closer, error) {
	switch cfg.Driver {
	case "sqlite":
		if path, _, _ := strings.Cut(cfg.DSN, "?"); !strings.Contains(path, ":memory:") {
			if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
				return nil, nil, errors.Wrap(err, "creating data directory")
			}
		}
		repo, err := repository.OpenSQLite(cfg.DSN)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening calculation store")
		}
		return repo, repo.Close, nil
	case "memory":
		return repository.NewCalculationRepositoryMemory(cfg.Capacity), func() error { return nil }, nil
	}
	return nil, nil, errors.Errorf("unknown store driver %q", cfg.Driver)
}
