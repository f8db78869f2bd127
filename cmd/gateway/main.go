// Command gateway serves the carrier gateway HTTP API.
//
// @title                       Carrier Gateway API
// @version                     1.0
// @description                 Rate quoting, tracking and address verification against the FedEx XML API.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/99minutos/carrier-gateway/internal/api"
	"github.com/99minutos/carrier-gateway/internal/core/service"
	"github.com/99minutos/carrier-gateway/internal/infrastructure/config"
	mongodb "github.com/99minutos/carrier-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/carrier-gateway/internal/infrastructure/db/redis"
	"github.com/99minutos/carrier-gateway/internal/infrastructure/queue"
	"github.com/99minutos/carrier-gateway/internal/infrastructure/transport"
	"github.com/99minutos/carrier-gateway/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; real deployments inject the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "carrier-gateway",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() { _ = rdb.Close() }()

	exchanges := mongodb.NewExchangeRepository(db)
	if err := exchanges.EnsureIndexes(ctx, cfg.Mongo.AuditRetention); err != nil {
		log.Fatal().Err(err).Msg("ensure exchange indexes")
	}

	authService := service.NewAuthService(mongodb.NewClientRepository(db), cfg.JWTSecret, cfg.TokenTTL)
	clients, err := cfg.Clients()
	if err != nil {
		log.Fatal().Err(err).Msg("parse api clients")
	}
	if err := authService.Seed(ctx, clients); err != nil {
		log.Fatal().Err(err).Msg("seed api clients")
	}

	carrier := service.NewCarrierService(
		cfg.FedEx.Credentials(),
		cfg.FedEx.Defaults(),
		transport.New(transport.Config{
			LiveURL:    cfg.FedEx.LiveURL,
			TestURL:    cfg.FedEx.TestURL,
			Timeout:    cfg.FedEx.Timeout,
			MaxRetries: cfg.FedEx.MaxRetries,
		}, logger.Component("transport")),
		redisdb.NewTrackingCache(rdb, cfg.Redis.TrackingTTL),
		exchanges,
		logger.Component("carrier"),
	)

	dispatcher := queue.NewDispatcher(cfg.Batch.Workers, carrier, logger.Component("dispatcher"))
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Auth:       authService,
		Carrier:    carrier,
		Dispatcher: dispatcher,
		MaxBatch:   cfg.Batch.MaxItems,
		Mongo:      db,
		Redis:      rdb,
		JWTSecret:  cfg.JWTSecret,
		Log:        logger.Component("api"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Bool("fedex_test", cfg.FedEx.Test).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
}
