package kvstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/redis"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/pos-ledger/pkg/config"
)

// Open construye el almacén clave-valor indicado por STORE_DRIVER.
// La función devuelta libera conexiones; siempre es no nil.
func Open(ctx context.Context, cfg *config.Config) (repository.KVStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case config.DriverMemory, "":
		return memory.New(), noop, nil

	case config.DriverRedis:
		s := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, noop, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		return s, s.Close, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		s := postgres.NewKVStore(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return s, func() error { pool.Close(); return nil }, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}
	return nil, noop, fmt.Errorf("STORE_DRIVER no soportado: %q", cfg.Store.Driver)
}
