package service

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"scribbles/app/repositories"
	"scribbles/config"
)

var errNotBadger = errors.New("command requires the badger storage driver")

// openStore opens the key-value store selected by the storage config.
func openStore(cfg config.StorageConfig, logger *slog.Logger) (repositories.Store, error) {
	switch cfg.Driver {
	case config.DriverBadger:
		return repositories.OpenBadgerStore(cfg.Path, cfg.SyncWrites)
	case config.DriverSQLite:
		return repositories.OpenSQLiteStore(cfg.Path)
	case config.DriverRedis:
		return repositories.ConnectRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
	case config.DriverMemory:
		return repositories.OpenBadgerStore("", false)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// openRepository opens the configured store and wraps it in a repository
// namespaced by the application name.
func openRepository(cfg *config.Config, logger *slog.Logger) (*repositories.Repository, error) {
	store, err := openStore(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}
	return repositories.NewRepository(store, repositories.WithNamespace(cfg.App.Name)), nil
}

// openBadger opens the on-disk badger store for backup and restore.
func openBadger(cfg *config.Config) (*repositories.BadgerStore, error) {
	if cfg.Storage.Driver != config.DriverBadger {
		return nil, fmt.Errorf("%w (configured: %s)", errNotBadger, cfg.Storage.Driver)
	}
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return repositories.OpenBadgerStore(cfg.Storage.Path, cfg.Storage.SyncWrites)
}
