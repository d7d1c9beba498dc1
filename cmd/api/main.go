package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/shift-scheduler/internal/db"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/export"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/shift-scheduler/internal/logging"
	"github.com/BruksfildServices01/shift-scheduler/internal/metrics"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/routes"
	"github.com/BruksfildServices01/shift-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogPretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	timezone.SetDefault(cfg.DefaultTimezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// INFRA
	// ======================================================
	store := newStore(cfg)

	locker, closeLocker := newLocker(ctx, cfg)
	defer closeLocker()

	var uploader export.Uploader = export.Disabled{}
	if cfg.ExportEnabled() {
		uploader = export.NewS3UploaderFromConfig(export.S3Config{
			Bucket:    cfg.ExportBucket,
			Region:    cfg.ExportRegion,
			Endpoint:  cfg.ExportEndpoint,
			AccessKey: cfg.AWSAccessKeyID,
			SecretKey: cfg.AWSSecretAccessKey,
		})
		log.Info().Str("bucket", cfg.ExportBucket).Msg("roster export enabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	dispatcher := audit.NewDispatcher(audit.New(store))
	defer dispatcher.Close()

	authLimiter := middleware.NewRateLimiter(cfg.RateLimitAuth, 5*time.Minute)
	defer authLimiter.Stop()

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		gin.Recovery(),
		logging.GinLogger(middleware.ContextUserID),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	routes.RegisterRoutes(r, routes.Deps{
		Store:       store,
		Config:      cfg,
		Locker:      locker,
		Uploader:    uploader,
		Audit:       dispatcher,
		Metrics:     collector,
		Gatherer:    reg,
		AuthLimiter: authLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("store", cfg.StoreDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newStore(cfg *config.Config) routes.Store {
	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Warn().Msg("using in-memory store; data is lost on restart")
		return repository.NewMemoryRepository()
	}
	return repository.NewGormRepository(dbpkg.NewDB(cfg))
}

func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, func()) {
	switch cfg.StaffLockDriver {
	case config.LockDriverLocal:
		log.Info().Msg("staff lock: in-process")
		return lock.NewLocal(cfg.StaffLockWait), func() {}

	case config.LockDriverRedis:
		l, err := lock.NewRedisFromURL(ctx, cfg.RedisURL, cfg.StaffLockTTL, cfg.StaffLockWait)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect redis for staff lock")
		}
		log.Info().Msg("staff lock: redis")
		return l, func() {
			if err := l.Close(); err != nil {
				log.Warn().Err(err).Msg("closing redis staff lock")
			}
		}
	}

	return lock.Noop{}, func() {}
}
