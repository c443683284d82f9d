package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/nurpe/contract-manager/internal/auth"
	"github.com/nurpe/contract-manager/internal/config"
	"github.com/nurpe/contract-manager/internal/db"
	"github.com/nurpe/contract-manager/internal/excel"
	"github.com/nurpe/contract-manager/internal/geo"
	httphandler "github.com/nurpe/contract-manager/internal/http"
	"github.com/nurpe/contract-manager/internal/http/middleware"
	"github.com/nurpe/contract-manager/internal/logger"
	"github.com/nurpe/contract-manager/internal/pdf"
	"github.com/nurpe/contract-manager/internal/pricing"
	"github.com/nurpe/contract-manager/internal/repository"
	"github.com/nurpe/contract-manager/internal/service"
	"github.com/nurpe/contract-manager/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	settingsRepo := repository.NewSettingsRepository(database)
	contractRepo := repository.NewContractRepository(database)
	signatureRepo := repository.NewSignatureRepository(database)
	addonRepo := repository.NewAddonRepository(database)

	maps := geo.NewMapsClient(cfg.External.MapsBaseURL, cfg.External.MapsAPIKey, cfg.External.Timeout)
	tolls := geo.NewTollClient(cfg.External.TollsBaseURL, cfg.External.TollsAPIKey, cfg.External.Timeout)
	resolver := geo.NewResolver(maps, tolls, log)
	suggester := geo.NewSuggester(maps, log)
	sessions := pricing.NewSessionStore(cfg.Calculation.SessionTTL)

	var files service.FileStorage
	s3, err := storage.New(context.Background(), cfg.Storage)
	switch {
	case err == nil:
		files = s3
	case errors.Is(err, storage.ErrNotConfigured):
		log.Warn().Msg("file storage not configured, signed PDF uploads disabled")
	default:
		log.Fatal().Err(err).Msg("failed to init file storage")
	}

	services := httphandler.Services{
		Addresses:    service.NewAddressService(suggester, maps, log),
		Calculations: service.NewCalculationService(settingsRepo, resolver, sessions, cfg.Calculation, log),
		Quotes:       service.NewQuoteService(sessions, pdf.NewGenerator(), excel.NewGenerator(), cfg.Calculation.QuoteValidityDays, log),
		Settings:     service.NewSettingsService(settingsRepo, log),
		Contracts:    service.NewContractService(contractRepo, log),
		Signatures:   service.NewSignatureService(contractRepo, signatureRepo, files, cfg.Upload.MaxPDFBytes, log),
		Addons:       service.NewAddonService(contractRepo, addonRepo, log),
	}

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(services, cfg.Upload.MaxPDFBytes, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.CORSOrigins, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contracts service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
