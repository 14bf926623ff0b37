package main

import (
	"fmt"

	"github.com/MKhiriev/go-help-registry/internal/config"
	"github.com/MKhiriev/go-help-registry/internal/logger"
	"github.com/MKhiriev/go-help-registry/internal/service"
	"github.com/MKhiriev/go-help-registry/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("help-registry")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	registry := store.NewRegistry(log)
	services := service.NewServices(registry, *cfg, log)

	// The interactive presentation layer drives these services; it lives
	// outside this module and binds against *service.Services.
	log.Info().
		Int("users", len(services.Registry.ListUsers())).
		Int("groups", len(services.Registry.ListGroups())).
		Msg("help registry initialized")
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
