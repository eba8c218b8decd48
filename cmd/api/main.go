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
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/notify"
	"github.com/BruksfildServices01/barbershop-booking/internal/routes"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// DATABASE
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	repo := infraRepo.NewBookingGormRepository(db)
	users := infraRepo.NewUserGormRepository(db)

	if err := dbpkg.SeedServices(ctx, repo, log); err != nil {
		return err
	}
	if err := dbpkg.SeedAdmin(ctx, users, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminName, log); err != nil {
		return err
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	metrics.Register()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)
	defer auditDispatcher.Close()

	var channels []notify.Channel
	if cfg.WebhookURL != "" {
		channels = append(channels, notify.NewWebhookChannel(cfg.WebhookURL))
	}
	if cfg.EmailEnabled() {
		channels = append(channels, notify.NewEmailChannel(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass))
	} else {
		log.Warn().Msg("EMAIL_USER or EMAIL_PASS not set, confirmation e-mails disabled")
	}
	notifier := notify.NewDispatcher(log, channels...)
	defer notifier.Close()

	var images ucBooking.ImageStore
	if cfg.StorageEnabled() {
		images = storage.NewS3Storage(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}

	limiter, closeLimiter, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := routes.NewEngine(cfg)
	if err != nil {
		return err
	}
	clock := timezone.NewShopClock(cfg.ShopTimezone)

	routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Log:       log,
		Clock:     clock,
		Repo:      repo,
		Users:     users,
		AuditLogs: auditLogger,
		Images:    images,
		Limiter:   limiter,
		Notifier:  notifier,
		Audit:     auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Addr()).
			Str("timezone", clock.Location().String()).
			Strs("trusted_proxies", cfg.TrustedProxies).
			Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newLimiter shares the booking budget through redis when REDIS_URL is set
// and falls back to a per-process window otherwise.
func newLimiter(ctx context.Context, cfg *config.Config, log zerolog.Logger) (middleware.Limiter, func(), error) {
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set, booking rate limit is per process")
		return middleware.NewMemoryLimiter(cfg.BookingRateLimit, cfg.BookingRateWindow), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	rdb := redis.NewClient(opts)

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, rate limiter will fail open until it recovers")
	}

	limiter := middleware.NewRedisLimiter(rdb, cfg.BookingRateLimit, cfg.BookingRateWindow, "booking")
	return limiter, func() { _ = rdb.Close() }, nil
}
