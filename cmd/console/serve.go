package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/cache"
	"estateadmin/console/internal/config"
	"estateadmin/console/internal/database"
	"estateadmin/console/internal/handlers"
	"estateadmin/console/internal/jobs"
	"estateadmin/console/internal/log"
	"estateadmin/console/internal/middleware"
	"estateadmin/console/internal/models"
	"estateadmin/console/internal/repository"
	"estateadmin/console/internal/screen"
	"estateadmin/console/internal/security"
	"estateadmin/console/internal/server"
	"estateadmin/console/internal/service"
	"estateadmin/console/internal/session"
	"estateadmin/console/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin console HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := log.New(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}

	checks := map[string]handlers.HealthCheck{
		"redis": cache.Check(redisClient),
	}

	// the activity log is optional; a nil store disables it
	var (
		activityLog service.ActivityLog
		pruner      jobs.ActivityPruner
	)
	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	switch {
	case errors.Is(err, database.ErrDisabled):
		logger.Info().Msg("postgres not configured, activity log disabled")
	case err != nil:
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	default:
		if err := database.Migrate(ctx, dbPool); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate postgres")
		}
		repo := repository.NewActivityRepository(dbPool)
		activityLog, pruner = repo, repo
		checks["postgres"] = dbPool.Ping
	}

	var (
		staging service.StagingStore
		purger  jobs.StagingPurger
	)
	if cfg.Storage.Endpoint != "" {
		objectStore, err := storage.NewObjectStore(cfg.Storage)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init object store")
		}
		if err := objectStore.EnsureBucket(ctx); err != nil {
			logger.Warn().Err(err).Msg("ensure bucket failed")
		}
		staging = objectStore
	} else {
		logger.Info().Msg("object storage not configured, images are not kept across failed submits")
	}

	keys, err := security.DeriveCookieKeys(cfg.Session.Secret)
	if err != nil {
		logger.Fatal().Err(err).Msg("derive cookie keys")
	}

	api := apiclient.NewClient(cfg.API.BaseURL,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithObserver(middleware.ObserveUpstream),
	)

	sessionStore := session.NewRedisStore(redisClient, cfg.Session.TTL)
	activity := service.NewActivityService(activityLog, logger)
	uploads := service.NewUploadService(staging, cfg.Uploads, logger)
	if uploads.StagingEnabled() {
		purger = uploads
	}

	handlerSet := handlers.NewHandlerSet(handlers.Dependencies{
		Log:       logger,
		Config:    cfg,
		API:       api,
		Auth:      service.NewAuthService(api, sessionStore, activity, logger),
		Uploads:   uploads,
		Activity:  activity,
		Snapshots: screen.NewSnapshots[models.Property](redisClient, "properties", cfg.Session.TTL),
		Checks:    checks,
	})

	httpServer, err := server.NewHTTPServer(cfg, logger, handlerSet, server.Sessions{
		Jar:      session.NewCookieJar(cfg.Session.Name, cfg.Session.TTL, cfg.Session.Secure, keys.Hash, keys.Block),
		Hydrator: session.NewHydrator(sessionStore, api, logger),
		CSRFKey:  keys.CSRF,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build http server")
	}

	scheduler := jobs.NewScheduler(purger, pruner, cfg.Postgres.ActivityRetention, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(cmd.Context(), logger, httpServer, scheduler, dbPool, redisClient)
	return nil
}

func waitForShutdown(parent context.Context, logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, db *pgxpool.Pool, redisClient *redis.Client) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	scheduler.Stop(shutdownCtx)

	if db != nil {
		db.Close()
	}
	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("redis close error")
	}

	logger.Info().Msg("server exited cleanly")
}
