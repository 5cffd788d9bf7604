package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"iptrack/internal/adapter/repo"
	"iptrack/internal/events"
	"iptrack/internal/http/handlers"
	httpapi "iptrack/internal/http/httpapi"
	"iptrack/internal/infra"
	"iptrack/internal/storage"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()
	runner := infra.NewSQLRunner(dbpool, logger)

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.StoragePath).Msg("failed to prepare storage")
	}

	publisher := events.New(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaWriteTimeout, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close event publisher")
		}
	}()

	app := &handlers.App{
		Domains:        repo.NewDomainRepository(runner),
		Trademarks:     repo.NewTrademarkRepository(runner),
		TradeNames:     repo.NewTradeNameRepository(runner),
		Mercantile:     repo.NewMercantileRepository(runner),
		Watchlist:      repo.NewWatchlistRepository(runner),
		RefData:        repo.NewRefDataRepository(runner),
		Attachments:    repo.NewAttachmentRepository(runner),
		Stats:          repo.NewStatsRepository(runner),
		Store:          store,
		Events:         publisher,
		DB:             runner,
		Logger:         logger,
		UploadPrefix:   cfg.UploadPrefix,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		CORSOrigins:     cfg.CORSAllowedOrigins,
		JWTSecret:       cfg.AuthJWTSecret,
		JWTIssuer:       cfg.AuthJWTIssuer,
		DefaultLocale:   cfg.DefaultLocale,
		RateLimitPerMin: cfg.RateLimitPerMin,
		UploadPrefix:    cfg.UploadPrefix,
		UploadDir:       store.BasePath(),
		TrustProxy:      cfg.TrustProxyHeaders,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Bool("auth", cfg.AuthJWTSecret != "").Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
