package main

import (
	"fmt"

	"github.com/ndanilov/shelf-viewer/internal/adapter"
	"github.com/ndanilov/shelf-viewer/internal/client"
	"github.com/ndanilov/shelf-viewer/internal/config"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/internal/store"
	"github.com/ndanilov/shelf-viewer/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// The terminal belongs to the TUI, so logs go to a file.
	log := logger.NewFileLogger("shelf-viewer-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = client.NewApp(services, ui, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
