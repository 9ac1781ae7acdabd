package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/nddiaye/centerpointe/internal/config"
	"github.com/nddiaye/centerpointe/internal/predictor"
	"github.com/nddiaye/centerpointe/internal/scheduler"
	"github.com/nddiaye/centerpointe/internal/server/handlers"
	"github.com/nddiaye/centerpointe/internal/server/router"
	"github.com/nddiaye/centerpointe/internal/simulation"
	"github.com/nddiaye/centerpointe/pkg/clients/modelserve"
	"github.com/nddiaye/centerpointe/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	params, err := cfg.BuildParams()
	if err != nil {
		baseLogger.Fatal("failed to build simulation parameters", zap.Error(err))
	}

	engine := simulation.NewEngine(params, baseLogger.Named("simulation"))

	// The predictor stays nil without a model server; the predict endpoints
	// then answer 503 while the simulation endpoints remain available.
	var pred *predictor.Predictor
	if cfg.Model.BaseURL != "" {
		transactionModel := modelserve.NewClient(cfg.Model.BaseURL, "transactions", cfg.Model.Timeout)
		staffingModel := modelserve.NewClient(cfg.Model.BaseURL, "staffing", cfg.Model.Timeout)
		pred = predictor.New(params, transactionModel, staffingModel, baseLogger.Named("predictor"))
		baseLogger.Info("model-backed predictions enabled", zap.String("base_url", cfg.Model.BaseURL))
	} else {
		baseLogger.Warn("model server url missing, predict endpoints disabled")
	}

	forecastHandler := handlers.NewForecastHandler(engine, pred, baseLogger.Named("handlers.forecast"))
	ginEngine := router.New(forecastHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, engine, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      ginEngine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
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
