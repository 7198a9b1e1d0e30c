package main

import (
	"context"
	"fmt"

	"github.com/ekovalyov/taskward/internal/config"
	transport "github.com/ekovalyov/taskward/internal/handler/http"
	"github.com/ekovalyov/taskward/internal/logger"
	"github.com/ekovalyov/taskward/internal/mailer"
	"github.com/ekovalyov/taskward/internal/server"
	"github.com/ekovalyov/taskward/internal/service"
	"github.com/ekovalyov/taskward/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("taskward-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	mail := mailer.NewMailer(cfg.Mailer, log)
	services := service.NewServices(storages, mail, *cfg, log)
	handler := transport.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
