package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gamewiki/internal/app"
	"gamewiki/internal/catalog"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the wiki over HTTP",
		Long:  "Serves wiki pages, images, the JSON API and metrics. SIGHUP reloads the catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd.Context(), func(cfg app.Config, holder *catalog.Holder) error {
				return serve(cmd.Context(), cfg, holder)
			})
		},
	}
}

func serve(ctx context.Context, cfg app.Config, holder *catalog.Holder) error {
	store, err := app.NewAssetStore(ctx, cfg)
	if err != nil {
		return err
	}

	handler, err := app.NewServer(holder, store)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				if err := handler.Reload(ctx); err != nil {
					log.Printf("reload catalog: %v", err)
					continue
				}
				log.Printf("catalog reloaded")
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("gamewiki listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	return nil
}
