// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/RPMTW/RPMTW-Server/internal/adapter"
	"github.com/RPMTW/RPMTW-Server/internal/config"
	"github.com/RPMTW/RPMTW-Server/internal/handler"
	"github.com/RPMTW/RPMTW-Server/internal/logger"
	"github.com/RPMTW/RPMTW-Server/internal/ratelimit"
	"github.com/RPMTW/RPMTW-Server/internal/server"
	"github.com/RPMTW/RPMTW-Server/internal/service"
	"github.com/RPMTW/RPMTW-Server/internal/store"
	"github.com/RPMTW/RPMTW-Server/internal/workers"
	"github.com/RPMTW/RPMTW-Server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("rpmtw-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("rpmtw-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("minio", cfg.Storage.Minio.Endpoint != "").
		Bool("redis_rate_limit", cfg.RateLimit.Redis.Address != "").
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	limiter, limiterWorkers, closeLimiter, err := newRateLimiter(ctx, cfg.RateLimit, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}
	defer closeLimiter()

	discord, err := adapter.NewDiscordProvider(cfg.OAuth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating Discord provider")
	}

	services, err := service.NewServices(storages, discord, buildInfo, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, limiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(limiterWorkers...)
	background.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}

	cancel()
	background.Wait()
}

// newRateLimiter builds the admission gate. A Redis store is used when an
// address is configured; otherwise counters live in process memory and an
// idle-key sweeper is returned alongside.
func newRateLimiter(ctx context.Context, cfg config.RateLimit, log *logger.Logger) (*ratelimit.Limiter, []workers.Worker, func(), error) {
	policy := ratelimit.Policy{
		Quota:         cfg.Quota,
		Window:        cfg.Window,
		BlockDuration: cfg.BlockDuration,
	}

	if cfg.Redis.Address != "" {
		client, err := ratelimit.ConnectRedis(ctx, ratelimit.RedisConfig{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, nil, err
		}

		limiter, err := ratelimit.NewLimiter(ratelimit.NewRedisStore(client), policy)
		if err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}

		log.Info().Str("address", cfg.Redis.Address).Msg("rate limiter uses Redis store")
		return limiter, nil, func() { _ = client.Close() }, nil
	}

	memory := ratelimit.NewMemoryStore()
	limiter, err := ratelimit.NewLimiter(memory, policy)
	if err != nil {
		return nil, nil, nil, err
	}

	sweeper := workers.NewLimiterSweeper(memory, policy, cfg.CleanupInterval, log)
	log.Info().Msg("rate limiter uses in-memory store")
	return limiter, []workers.Worker{sweeper}, func() {}, nil
}
