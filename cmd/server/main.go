package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roomly/storefront-api/internal/api"
	"github.com/roomly/storefront-api/internal/infrastructure/catalog"
	"github.com/roomly/storefront-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/roomly/storefront-api/internal/infrastructure/db/redis"
	"github.com/roomly/storefront-api/internal/infrastructure/identity"
	"github.com/roomly/storefront-api/internal/infrastructure/mail"
	"github.com/roomly/storefront-api/internal/infrastructure/storage"
	"github.com/roomly/storefront-api/internal/pkg/config"
	"github.com/roomly/storefront-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	pg, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pg.Close()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	store, err := storage.New(storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		UseSSL:        cfg.Storage.UseSSL,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("storage client failed")
	}

	e := api.NewRouter(api.Deps{
		PG:       pg,
		Redis:    rdb,
		Identity: identity.NewClient(identity.Config{BaseURL: cfg.Identity.BaseURL}),
		Catalog: catalog.NewClient(catalog.Config{
			BaseURL:   cfg.Catalog.BaseURL,
			ServiceID: cfg.Catalog.ServiceID,
			APIVer:    cfg.Catalog.APIVer,
			AccountID: cfg.Catalog.AccountID,
			LoginID:   cfg.Catalog.LoginID,
			Key:       cfg.Catalog.Key,
		}),
		Store:     store,
		Mailer:    mail.New(mail.Config{APIKey: cfg.Mail.APIKey, From: cfg.Mail.From}),
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
