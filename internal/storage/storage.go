// Package storage opens the slot store selected by configuration.
package storage

import (
	"context"
	"fmt"

	"storefront/internal/blob"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/objectstore"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/persistence/sqlite"
	"storefront/pkg/domain"
)

// Driver identifies a slot store implementation.
type Driver string

const (
	DriverMemory        Driver = "memory"         // in-memory only (tests / ephemeral)
	DriverMemoryObjects Driver = "memory-objects" // JSON objects in the in-memory blob store
	DriverSQLite        Driver = "sqlite"         // embedded sqlite file
	DriverPostgres      Driver = "postgres"       // PostgreSQL server
	DriverFS            Driver = "fs"             // JSON objects on the local filesystem
	DriverS3            Driver = "s3"             // JSON objects in an S3 / MinIO bucket
)

// Config selects a backend and carries its connection settings.
type Config struct {
	Driver      Driver        `yaml:"driver"`
	SQLitePath  string        `yaml:"sqlite_path"`
	PostgresDSN string        `yaml:"postgres_dsn"`
	FSRoot      string        `yaml:"fs_root"`
	S3          blob.S3Config `yaml:"s3"`
}

// Open returns the slot store named by cfg.Driver. An empty driver selects
// sqlite.
func Open(ctx context.Context, cfg Config) (domain.SlotStore, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	switch driver {
	case DriverMemory:
		return memory.NewStore(), nil
	case DriverSQLite:
		store, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverPostgres:
		store, err := postgres.NewStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverFS, DriverS3, DriverMemoryObjects:
		objects, err := blob.Open(ctx, blob.Config{Driver: blobDriver(driver), FSRoot: cfg.FSRoot, S3: cfg.S3})
		if err != nil {
			return nil, fmt.Errorf("open %s objects: %w", driver, err)
		}
		store, err := objectstore.New(objects)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}

func blobDriver(d Driver) blob.Driver {
	if d == DriverMemoryObjects {
		return blob.DriverMemory
	}
	return blob.Driver(d)
}
