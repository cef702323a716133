package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/emsuite/employee-system/internal/api"
	"github.com/emsuite/employee-system/internal/api/metrics"
	"github.com/emsuite/employee-system/internal/core/service"
	mongodb "github.com/emsuite/employee-system/internal/infrastructure/db/mongo"
	redisdb "github.com/emsuite/employee-system/internal/infrastructure/db/redis"
	"github.com/emsuite/employee-system/internal/infrastructure/directory"
	"github.com/emsuite/employee-system/internal/pkg/config"
	"github.com/emsuite/employee-system/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	sharedHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Session.SharedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashing shared credential failed")
	}

	table := directory.NewTable(directory.Seed())
	sessions := service.NewSessionService(
		redisdb.NewSessionRepository(rdb),
		table,
		sharedHash,
		cfg.Session.LoginDelay,
		log,
	)

	// Restore whatever identity survived the last run before serving.
	sessions.Initialize(ctx)
	if sessions.Current() != nil {
		metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	} else {
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
	}

	e := api.NewRouter(db, rdb, sessions, table, log)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting employee management server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		return
	}

	log.Info().Msg("server stopped gracefully")
}
