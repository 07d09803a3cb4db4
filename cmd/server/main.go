package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ai-builder/internal/adapter"
	"github.com/MKhiriev/ai-builder/internal/config"
	handler "github.com/MKhiriev/ai-builder/internal/handler/http"
	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/internal/server"
	"github.com/MKhiriev/ai-builder/internal/service"
	"github.com/MKhiriev/ai-builder/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ai-builder")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, cfg.Billing.FreeProjectLimit)

	openAI := adapter.NewOpenAIProvider(cfg.Providers.OpenAIKey, adapter.OpenAICodeModel, cfg.Providers.LLMTimeout)
	groq := adapter.NewGroqProvider(cfg.Providers.GroqKey, adapter.GroqCodeModel, cfg.Providers.LLMTimeout)

	vendors := service.Vendors{
		CodeProviders: []adapter.CodeProvider{openAI, groq},
		Editor:        openAI,
		ImageProviders: []adapter.ImageProvider{
			adapter.NewStabilityProvider(cfg.Providers.StabilityKey, cfg.Providers.VendorTimeout),
			adapter.NewHuggingFaceProvider(cfg.Providers.HuggingFaceKey, cfg.Providers.VendorTimeout),
		},
		Synthesizer: adapter.NewElevenLabsSynthesizer(cfg.Providers.ElevenLabsKey, cfg.Providers.VendorTimeout),
		Recognizer:  adapter.NewDeepgramRecognizer(cfg.Providers.DeepgramKey, cfg.Providers.VendorTimeout),
		Auth:        adapter.NewGoTrueProvider(cfg.Providers.AuthURL, cfg.Providers.AuthKey, cfg.Providers.VendorTimeout),
	}

	services := service.NewServices(storages, vendors, *cfg, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
