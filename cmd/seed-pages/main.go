// Package main implements the seeding CLI: it reconciles every slug in
// the default section catalog against the store, creating unpublished
// pages where none exist yet. Safe to run repeatedly.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/config"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/infrastructure/di"
)

func main() {
	var (
		slug          = flag.String("slug", "", "reconcile a single slug instead of the whole catalog")
		createMissing = flag.Bool("create-missing", true, "create unpublished pages for slugs without a document")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Logger.Sync()

	if *slug != "" {
		_, changed, err := container.ReconcileHandler.Handle(ctx, commands.ReconcileSectionsCommand{
			Slug:            *slug,
			CreateIfMissing: *createMissing,
		})
		if err != nil {
			container.Logger.Fatal("reconciliation failed",
				zap.String("slug", *slug),
				zap.Error(err))
		}
		container.Logger.Info("reconciliation complete",
			zap.String("slug", *slug),
			zap.Bool("changed", changed))
		return
	}

	written, err := container.ReconcileHandler.HandleAll(ctx, *createMissing)
	if err != nil {
		container.Logger.Fatal("bulk reconciliation finished with failures",
			zap.Int("pages_written", written),
			zap.Error(err))
	}
	container.Logger.Info("bulk reconciliation complete",
		zap.Int("pages_written", written),
		zap.Int("catalog_slugs", len(container.Catalog.Slugs())))
}
