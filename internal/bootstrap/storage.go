package bootstrap

import (
	"fmt"

	"github.com/osse101/Kombinat_Go/internal/config"
	"github.com/osse101/Kombinat_Go/internal/database"
	"github.com/osse101/Kombinat_Go/internal/database/jsonfile"
	"github.com/osse101/Kombinat_Go/internal/database/postgres"
	"github.com/osse101/Kombinat_Go/internal/handler"
	"github.com/osse101/Kombinat_Go/internal/logger"
	"github.com/osse101/Kombinat_Go/internal/repository"
)

// Storage bundles the snapshot repository with the pieces the rest of the
// application needs from it: a readiness pinger and a close hook.
// Pinger is nil for the file backend, which has no connection to probe.
type Storage struct {
	Progression repository.Progression
	Pinger      handler.Pinger
	Close       func()
}

// SetupStorage creates the snapshot repository selected by STORAGE_BACKEND.
// The postgres backend connects a pool and applies embedded migrations; the
// file backend creates the snapshot directory.
func SetupStorage(cfg *config.Config) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		connString := cfg.GetDBConnString()
		pool, err := database.NewPool(connString, StorageMaxConnections, StorageMaxConnIdleTime, StorageMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}

		if err := database.Migrate(connString); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
		}

		logger.Info(LogMsgStorageReady, "backend", cfg.StorageBackend)
		return &Storage{
			Progression: postgres.NewProgressionRepository(pool),
			Pinger:      pool,
			Close:       pool.Close,
		}, nil

	case config.StorageFile:
		repo, err := jsonfile.NewProgressionRepository(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}

		logger.Info(LogMsgStorageReady, "backend", cfg.StorageBackend, "data_dir", cfg.DataDir)
		return &Storage{
			Progression: repo,
			Close:       func() {},
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageBackend, cfg.StorageBackend)
	}
}
