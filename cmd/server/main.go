package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/docsense/docsense/internal/api/v1"
	"github.com/docsense/docsense/internal/cache"
	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/domain/lead"
	"github.com/docsense/docsense/internal/email"
	"github.com/docsense/docsense/internal/logger"
	redisClient "github.com/docsense/docsense/internal/redis"
	redisRepo "github.com/docsense/docsense/internal/repository/redis"
	"github.com/docsense/docsense/internal/rest"
	"github.com/docsense/docsense/internal/service"
	"github.com/docsense/docsense/internal/testutil"
	"github.com/getsentry/sentry-go"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			TracesSampleRate: cfg.Sentry.SampleRate,
		}); err != nil {
			log.Errorw("failed to initialize sentry", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	var rdb *redisClient.Client
	if cfg.Redis.Enabled {
		rdb, err = redisClient.NewClient(cfg.Redis, log)
		if err != nil {
			log.Fatalw("failed to connect to redis", "error", err)
		}
		defer func() { _ = rdb.Close() }()
	}

	// Leads go to redis when it is configured; the in-memory store keeps
	// local development working without any infrastructure.
	var leadRepo lead.Repository
	if rdb != nil {
		leadRepo = redisRepo.NewLeadRepository(rdb, log)
	} else {
		log.Warnw("redis disabled, storing leads in memory only")
		leadRepo = testutil.NewInMemoryLeadStore()
	}

	emailClient := email.NewClient(cfg.Email)
	emailService := email.NewService(emailClient, cfg.Email.SalesAddress, log)

	params := service.ServiceParams{
		Logger:   log,
		Config:   cfg,
		Cache:    cache.Initialize(cfg, log, rdb),
		LeadRepo: leadRepo,
		Email:    emailService,
	}

	calculatorService := service.NewCalculatorService(params)
	planService := service.NewPlanService(params)
	leadService := service.NewLeadService(params, calculatorService)

	router := rest.NewRouter(rest.Handlers{
		Calculator: v1.NewCalculatorHandler(calculatorService, log),
		Plan:       v1.NewPlanHandler(planService, log),
		Lead:       v1.NewLeadHandler(leadService, log),
		Health:     v1.NewHealthHandler(),
	}, cfg, log)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infow("starting server", "address", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}
}
