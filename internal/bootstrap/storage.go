package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greenlegacy-ng/greenlegacy/internal/config"
	"github.com/greenlegacy-ng/greenlegacy/internal/database"
	"github.com/greenlegacy-ng/greenlegacy/internal/database/memory"
	"github.com/greenlegacy-ng/greenlegacy/internal/database/postgres"
	"github.com/greenlegacy-ng/greenlegacy/internal/dataset"
	"github.com/greenlegacy-ng/greenlegacy/internal/repository"
)

// Storage holds the repository implementations selected by STORAGE_DRIVER.
// Both drivers start from the same embedded dataset.
type Storage struct {
	Trees     repository.Tree
	Donations repository.Donation
	EventLog  repository.EventLog
	Pinger    repository.Pinger
	Dataset   *dataset.Dataset

	pool *pgxpool.Pool
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitializeStorage loads the seed dataset and builds the configured store.
// The postgres driver connects, applies migrations and seeds an empty database.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	ds, err := dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadDataset, err)
	}
	slog.Info(LogMsgDatasetLoaded,
		"trees", len(ds.Trees),
		"tiers", len(ds.Tiers),
		"donations", len(ds.Donations))

	switch cfg.StorageDriver {
	case config.DriverMemory:
		store := memory.NewSeededStore(ds)
		slog.Info(LogMsgStorageInitialized, "driver", cfg.StorageDriver)
		return &Storage{Trees: store, Donations: store, EventLog: store, Pinger: store, Dataset: ds}, nil

	case config.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := syncDatabase(ctx, pool, ds); err != nil {
			pool.Close()
			return nil, err
		}
		slog.Info(LogMsgStorageInitialized, "driver", cfg.StorageDriver)
		return &Storage{
			Trees:     postgres.NewTreeRepository(pool),
			Donations: postgres.NewDonationRepository(pool),
			EventLog:  postgres.NewEventLogRepository(pool),
			Pinger:    pool,
			Dataset:   ds,
			pool:      pool,
		}, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
}

// syncDatabase brings the schema up to date and seeds it on first start
func syncDatabase(ctx context.Context, pool *pgxpool.Pool, ds *dataset.Dataset) error {
	ctx, cancel := context.WithTimeout(ctx, StorageInitTimeout)
	defer cancel()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}

	slog.Info(LogMsgSeedingDatabase)
	if err := postgres.Seed(ctx, pool, ds); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedDB, err)
	}
	return nil
}
