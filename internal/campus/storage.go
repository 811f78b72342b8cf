package campus

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/campus/internal/core/config"
	"github.com/colonyops/campus/internal/core/kv"
	"github.com/colonyops/campus/internal/data/db"
	"github.com/colonyops/campus/internal/data/stores"
)

// OpenStorage opens the configured key-value backend. The returned closer
// releases the underlying connection.
func OpenStorage(ctx context.Context, cfg *config.Config) (kv.KV, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		client, err := stores.OpenRedis(ctx, cfg.Storage.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis: %w", err)
		}
		return stores.NewRedisKV(client, ""), client, nil

	case config.BackendSQLite, "":
		database, err := openSQLite(cfg)
		if err != nil {
			return nil, nil, err
		}
		return stores.NewKVStore(database), database, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// openSQLite opens the database, moving a corrupted file aside and retrying
// once.
func openSQLite(cfg *config.Config) (*db.DB, error) {
	opts := db.OpenOptions{BusyTimeout: cfg.Storage.BusyTimeout}

	database, err := db.Open(cfg.DataDir, opts)
	if err == nil {
		return database, nil
	}
	if !stores.IsCorruptionError(err) {
		return nil, fmt.Errorf("open database: %w", err)
	}

	backup, recErr := stores.RecoverFromCorruption(cfg.DataDir)
	if recErr != nil {
		return nil, fmt.Errorf("recover corrupted database: %w", recErr)
	}
	log.Warn().Err(err).Str("backup", backup).Msg("database was corrupted, starting fresh")

	database, err = db.Open(cfg.DataDir, opts)
	if err != nil {
		return nil, fmt.Errorf("open database after recovery: %w", err)
	}
	return database, nil
}
