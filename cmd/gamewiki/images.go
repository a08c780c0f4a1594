package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gamewiki/internal/app"
	"gamewiki/internal/assets"
)

func newImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage entity images in the asset store",
	}
	cmd.AddCommand(newImagesPushCmd(), newImagesListCmd())
	return cmd
}

func newImagesPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push DIR",
		Short: "Upload every .png in DIR under its file stem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			n, err := pushImages(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			log.Printf("pushed %d images to %s store", n, store.Driver())
			return nil
		},
	}
}

func newImagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			infos, err := store.List(cmd.Context(), "images/")
			if err != nil {
				return err
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", info.Key, info.Size)
			}
			return nil
		},
	}
}

func openStore(ctx context.Context) (assets.Store, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.NewAssetStore(ctx, cfg)
}

// pushImages uploads the .png files directly inside dir and returns how many
// were stored.
func pushImages(ctx context.Context, store assets.Store, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	pushed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}
		if err := pushFile(ctx, store, filepath.Join(dir, name), strings.TrimSuffix(name, filepath.Ext(name))); err != nil {
			return pushed, err
		}
		pushed++
	}
	return pushed, nil
}

func pushFile(ctx context.Context, store assets.Store, path, stem string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := store.Put(ctx, assets.ImageKey(stem), f, "image/png"); err != nil {
		return fmt.Errorf("push %s: %w", path, err)
	}
	return nil
}
