package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"pressroom/docs"
	"pressroom/internal/auth"
	"pressroom/internal/cache"
	"pressroom/internal/config"
	"pressroom/internal/db"
	"pressroom/internal/handler"
	"pressroom/internal/router"
	"pressroom/internal/service"
	"pressroom/internal/store"
)

// @title Pressroom API
// @version 1.0
// @description Editorial backend for a small newsroom: articles, review workflow, and newspaper publication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.Open(cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Drop all persisted collections if RESET_DB is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Warn("RESET_DB=true detected, dropping snapshots table")
		if err := gormDB.Migrator().DropTable(&store.Snapshot{}); err != nil {
			logger.Warn("drop snapshots table (may not exist)", zap.Error(err))
		}
	}

	snapshots, err := store.NewSnapshotStore(gormDB, logger)
	if err != nil {
		logger.Fatal("snapshot store init", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessions := auth.NewSessionStore(cacheClient)

	// Initialize services; identity bootstrap seeds the default admin on an
	// empty store.
	ctx := context.Background()
	identity, err := service.NewIdentityService(ctx, snapshots, logger)
	if err != nil {
		logger.Fatal("identity service init", zap.Error(err))
	}
	settings, err := service.NewSettingsService(ctx, snapshots, logger)
	if err != nil {
		logger.Fatal("settings service init", zap.Error(err))
	}
	editorial, err := service.NewEditorialService(ctx, snapshots, settings, logger)
	if err != nil {
		logger.Fatal("editorial service init", zap.Error(err))
	}
	publication, err := service.NewPublicationService(ctx, snapshots, editorial, cacheClient, logger)
	if err != nil {
		logger.Fatal("publication service init", zap.Error(err))
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(identity, jwtService, sessions)
	userHandler := handler.NewUserHandler(identity)
	articleHandler := handler.NewArticleHandler(editorial)
	newspaperHandler := handler.NewNewspaperHandler(publication, settings)
	settingsHandler := handler.NewSettingsHandler(settings)

	// Register routes
	router.Register(
		e,
		jwtService,
		sessions,
		identity,
		authHandler,
		userHandler,
		articleHandler,
		newspaperHandler,
		settingsHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
