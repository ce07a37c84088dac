package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamegestor/catalog-api/internal/api"
	"github.com/gamegestor/catalog-api/internal/core/auth"
	"github.com/gamegestor/catalog-api/internal/infrastructure/config"
	mongodb "github.com/gamegestor/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gamegestor/catalog-api/internal/infrastructure/db/redis"
	"github.com/gamegestor/catalog-api/internal/infrastructure/upload"
	"github.com/gamegestor/catalog-api/pkg/logger"
)

// @title           GameGestor API
// @version         1.0
// @description     User and game catalog management API with JWT authentication.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ttl, err := auth.ParseTTL(cfg.JWTExpiresIn)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.JWTExpiresIn).Msg("invalid JWT_EXPIRES_IN")
	}
	tokens := auth.NewTokenService(cfg.JWTSecret, ttl)

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewGameRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("game indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	uploads, err := upload.NewStore(upload.Config{
		Dir:      cfg.Upload.Dir,
		MaxBytes: cfg.Upload.MaxBytes,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("upload store init failed")
	}

	e := api.NewRouter(db, rdb, tokens, uploads, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
