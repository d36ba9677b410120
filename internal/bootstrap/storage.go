package bootstrap

import (
	"context"
	"fmt"

	"github.com/Domenick1991/aerolinea/config"
	"github.com/Domenick1991/aerolinea/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDatasetRepository opens the backend selected by storage.driver. The
// returned cleanup func is never nil.
func NewDatasetRepository(ctx context.Context, cfg *config.Config) (repository.DatasetRepository, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return repository.NewMemoryDatasetRepository(), noop, nil
	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}
		repo := repository.NewPGDatasetRepository(pool, cfg.Storage.Dataset)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return repo, pool.Close, nil
	default:
		return repository.NewFileDatasetRepository(cfg.Storage.FilePath), noop, nil
	}
}
