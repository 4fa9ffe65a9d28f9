package main

import (
	"context"
	"fmt"

	"github.com/ndanilov/shelf-viewer/internal/config"
	"github.com/ndanilov/shelf-viewer/internal/fetcher"
	"github.com/ndanilov/shelf-viewer/internal/handler"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/server"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/internal/store"
	"github.com/ndanilov/shelf-viewer/internal/workers"
	"github.com/ndanilov/shelf-viewer/migrations"
	"github.com/ndanilov/shelf-viewer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("shelf-viewer-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres")
	}
	defer func() {
		if err = db.Close(); err != nil {
			log.Err(err).Msg("error closing database connection")
		}
	}()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)

	fetchers, err := newFetchers(cfg.Scrapers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating scraper clients")
	}

	services := service.NewServices(repositories, fetchers, *cfg, log)

	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	workers.NewWorkers(services.LibraryService, cfg.Workers, log).Run(workersCtx)

	srv.RunServer()
}

// newFetchers builds a scraper client per collection that has a configured
// address.
func newFetchers(cfg config.Scrapers, log *logger.Logger) (fetcher.Fetchers, error) {
	addresses := map[models.Collection]string{
		models.CollectionAniList:   cfg.AniListAddress,
		models.CollectionRoyalRoad: cfg.RoyalRoadAddress,
	}

	fetchers := make(fetcher.Fetchers, len(addresses))
	for collection, address := range addresses {
		if address == "" {
			continue
		}

		f, err := fetcher.NewHTTPFetcher(address, cfg.RequestTimeout, collection, log)
		if err != nil {
			return nil, err
		}
		fetchers[collection] = f
	}

	return fetchers, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
