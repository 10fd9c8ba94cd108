package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluecart/logistics-api/docs"
	"github.com/bluecart/logistics-api/internal/api"
	"github.com/bluecart/logistics-api/internal/api/handler"
	"github.com/bluecart/logistics-api/internal/core/ports"
	"github.com/bluecart/logistics-api/internal/core/service"
	"github.com/bluecart/logistics-api/internal/infrastructure/config"
	mongodb "github.com/bluecart/logistics-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bluecart/logistics-api/internal/infrastructure/db/redis"
	"github.com/bluecart/logistics-api/internal/infrastructure/queue"
	"github.com/bluecart/logistics-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title        BlueCart Logistics API
// @version      1.0
// @description  Shipment lifecycle, hub capacity, route assignment and analytics.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{Service: "logistics-api"})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "logistics-api",
		Pretty:  cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	shipmentRepo := mongodb.NewShipmentRepository(db)
	hubRepo := mongodb.NewHubRepository(db)
	routeRepo := mongodb.NewRouteRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"shipments": shipmentRepo.EnsureIndexes,
		"hubs":      hubRepo.EnsureIndexes,
		"routes":    routeRepo.EnsureIndexes,
		"users":     userRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// Sessions require a replica set; standalone Mongo falls back to
	// non-transactional writes.
	var tx ports.TxRunner = mongodb.NewTxRunner(mongoClient)
	if cfg.Env == "development" {
		tx = ports.NopTxRunner{}
	}

	// --- Services ---
	shipmentSvc := service.NewShipmentService(shipmentRepo, hubRepo, tx, log)
	hubSvc := service.NewHubService(hubRepo, log)
	routeSvc := service.NewRouteService(routeRepo, shipmentRepo, log)
	userSvc := service.NewUserService(userRepo, log)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	analyticsSvc := service.NewAnalyticsService(shipmentRepo, hubRepo, log)
	eventSvc := service.NewEventService(shipmentSvc, shipmentRepo, redisdb.NewScanDedup(rdb), log)

	dispatcher := queue.NewDispatcher(cfg.Events.Workers, cfg.Events.QueueSize, eventSvc, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Shipments: handler.NewShipmentHandler(shipmentSvc),
		Hubs:      handler.NewHubHandler(hubSvc),
		Routes:    handler.NewRouteHandler(routeSvc),
		Users:     handler.NewUserHandler(userSvc),
		Auth:      handler.NewAuthHandler(authSvc),
		Events:    handler.NewEventHandler(dispatcher),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc),
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
