package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/demandcast/internal/config"
	"github.com/mamadbah2/demandcast/internal/scheduler"
	"github.com/mamadbah2/demandcast/internal/server/handlers"
	"github.com/mamadbah2/demandcast/internal/server/router"
	contactsvc "github.com/mamadbah2/demandcast/internal/service/contact"
	"github.com/mamadbah2/demandcast/internal/service/forecast"
	"github.com/mamadbah2/demandcast/internal/service/snapshot"
	"github.com/mamadbah2/demandcast/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	location, err := cfg.Location()
	if err != nil {
		baseLogger.Fatal("failed to resolve timezone", zap.Error(err))
	}

	opts := []forecast.Option{forecast.WithLogger(baseLogger.Named("svc.forecast"))}
	if cfg.Forecast.NoiseSeed != 0 {
		opts = append(opts, forecast.WithNoise(forecast.NewSeededSource(cfg.Forecast.NoiseSeed)))
		baseLogger.Info("seeded noise enabled", zap.Uint64("seed", cfg.Forecast.NoiseSeed))
	}
	generator := forecast.NewGenerator(cfg.Forecast.LastActualDate, opts...)

	snapshotSvc := snapshot.NewService(generator, snapshot.Window{
		Start: cfg.Forecast.HistoryStart,
		End:   cfg.Forecast.HistoryEnd,
	}, location, baseLogger.Named("svc.snapshot"))
	if err := snapshotSvc.Refresh(context.Background()); err != nil {
		baseLogger.Fatal("failed to build initial snapshot", zap.Error(err))
	}

	contactSvc := contactsvc.NewService(baseLogger.Named("svc.contact"))

	dashboardHandler := handlers.NewDashboardHandler(generator, snapshotSvc, cfg.Server.MaxRangeDays, baseLogger.Named("handlers.dashboard"))
	contactHandler := handlers.NewContactHandler(contactSvc, baseLogger.Named("handlers.contact"))
	engine := router.New(dashboardHandler, contactHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Refresh.CronSchedule, location, snapshotSvc, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("last_actual_date", forecast.FormatDate(cfg.Forecast.LastActualDate)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
