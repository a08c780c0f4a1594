package main

import (
	"context"
	"fmt"
	"log"

	"gamewiki/internal/app"
	"gamewiki/internal/catalog"
)

// withCatalog loads config, opens the catalog source and loads it once, then
// calls fn. The source is closed when fn returns.
func withCatalog(ctx context.Context, fn func(app.Config, *catalog.Holder) error) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	source, closeSource, err := app.NewSource(cfg)
	if err != nil {
		return fmt.Errorf("open catalog source: %w", err)
	}
	defer func() {
		if err := closeSource(); err != nil {
			log.Printf("close catalog source: %v", err)
		}
	}()

	locks, err := catalog.LoadLockTables(cfg.LockTables)
	if err != nil {
		return err
	}

	holder := catalog.NewHolder(source, locks, cfg.Locale)
	if _, err := holder.Reload(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	return fn(cfg, holder)
}
