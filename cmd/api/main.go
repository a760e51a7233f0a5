package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	"github.com/BruksfildServices01/barber-dashboard/internal/auth"
	"github.com/BruksfildServices01/barber-dashboard/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-dashboard/internal/db"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/infra/cache"
	"github.com/BruksfildServices01/barber-dashboard/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/barber-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/barber-dashboard/internal/logging"
	"github.com/BruksfildServices01/barber-dashboard/internal/metrics"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/routes"
	ucAppointment "github.com/BruksfildServices01/barber-dashboard/internal/usecase/appointment"
)

type storage struct {
	appointments domain.Repository
	shop         shop.Repository
	audit        audit.Store
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env not found, using process environment")
	}

	cfg := config.Load()
	log := logging.New("barber-dashboard", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}

	var slotCache domain.SlotCache = domain.NopSlotCache{}
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, slot cache disabled", "error", err)
		} else {
			defer rdb.Close()
			slotCache = cache.NewRedisSlotCache(rdb, cfg.SlotCacheTTL, log)
			log.Info("slot cache enabled", "ttl", cfg.SlotCacheTTL.String())
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	auditDispatcher := audit.NewDispatcher(audit.New(store.audit), log)

	if err := auth.EnsureAdmin(ctx, store.shop, cfg.AdminEmail, cfg.AdminPassword, log); err != nil {
		log.Error("admin bootstrap failed", "error", err)
		os.Exit(1)
	}

	limiter := middleware.NewRateLimiter(cfg.PublicRateLimitRPS, cfg.PublicRateLimitBurst)
	go limiter.Run(ctx)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	if !cfg.IsProduction() {
		r.Use(gin.Logger())
	}

	routes.RegisterRoutes(r, routes.Dependencies{
		Config: cfg,
		Shop:   store.shop,
		Appointment: ucAppointment.Deps{
			Repo:     store.appointments,
			Cache:    slotCache,
			Audit:    auditDispatcher,
			Metrics:  m,
			Policy:   domain.Policy{FreeCancelledSlots: cfg.FreeCancelledSlots},
			Logger:   log,
			Timezone: cfg.ShopTimezone,
		},
		AuditStore:  store.audit,
		RateLimiter: limiter,
		Gatherer:    registry,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "env", cfg.AppEnv, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	auditDispatcher.Close()
}

func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage, error) {
	if cfg.Storage == config.StoragePostgres {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return storage{}, err
		}
		shopRepo := infraRepo.NewShopGormRepository(db)
		return storage{
			appointments: shopRepo,
			shop:         shopRepo,
			audit:        infraRepo.NewAuditGormRepository(db),
		}, nil
	}

	mem := memory.NewSeeded()
	if !cfg.IsProduction() {
		if err := auth.SeedDemoUsers(ctx, mem, log); err != nil {
			return storage{}, err
		}
	}
	return storage{appointments: mem, shop: mem, audit: mem}, nil
}
