package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"gamewiki/internal/assets"
	"gamewiki/internal/catalog"
)

// sqlDrivers maps a data driver to its database/sql driver name.
var sqlDrivers = map[string]string{
	DataMySQL:    "mysql",
	DataSQLite:   "sqlite",
	DataPostgres: "pgx",
}

// NewDB opens the catalog database using sensible defaults. The catalog is
// read-mostly, so the pool stays small.
func NewDB(cfg Config) (*sql.DB, error) {
	driver, ok := sqlDrivers[cfg.DataDriver]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no database", catalog.ErrUnknownDriver, cfg.DataDriver)
	}
	dsn := cfg.DSN
	if cfg.DataDriver == DataSQLite {
		dsn = cfg.DataPath
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	return db, nil
}

// NewSource returns the catalog source selected by cfg. The returned close
// function releases the database, if one was opened.
func NewSource(cfg Config) (catalog.Source, func() error, error) {
	if cfg.DataDriver == DataDir {
		return catalog.DirSource{Dir: cfg.DataPath}, func() error { return nil }, nil
	}
	db, err := NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return catalog.SQLSource{DB: db}, db.Close, nil
}

// NewAssetStore returns the image store selected by cfg.
func NewAssetStore(ctx context.Context, cfg Config) (assets.Store, error) {
	switch assets.Driver(cfg.ImageDriver) {
	case assets.DriverFilesystem:
		return assets.NewFSStore(cfg.ImageRoot)
	case assets.DriverMemory:
		return assets.NewMemoryStore(), nil
	case assets.DriverS3:
		return assets.NewS3Store(ctx, assets.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("unsupported WIKI_IMAGE_DRIVER %q", cfg.ImageDriver)
	}
}
