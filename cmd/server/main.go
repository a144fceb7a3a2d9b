package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/atelierlabs/workroom/internal/config"
	materialhttp "github.com/atelierlabs/workroom/internal/material/delivery/http"
	materialrepo "github.com/atelierlabs/workroom/internal/material/repository"
	orderhttp "github.com/atelierlabs/workroom/internal/order/delivery/http"
	orderrepo "github.com/atelierlabs/workroom/internal/order/repository"
	planninghttp "github.com/atelierlabs/workroom/internal/planning/delivery/http"
	producthttp "github.com/atelierlabs/workroom/internal/product/delivery/http"
	productrepo "github.com/atelierlabs/workroom/internal/product/repository"
	"github.com/atelierlabs/workroom/internal/server"
	"github.com/atelierlabs/workroom/pkg/logger"
	"github.com/atelierlabs/workroom/pkg/tracing"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Logger is not initialized yet at this point.
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	serviceName := "workroom"
	isDevelopment := cfg.App.Env == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(cfg.App.LogLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.App.Env).
		Str("log_level", cfg.App.LogLevel).
		Msg("Starting workroom server")

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(serviceName, cfg.Tracing.Endpoint)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
		logger.Logger.Info().
			Str("endpoint", cfg.Tracing.Endpoint).
			Msg("Tracing initialized")
	}

	materials := materialrepo.NewMemoryMaterialRepository(cfg.Inventory.Categories, cfg.Inventory.Units)
	products := productrepo.NewMemoryProductRepository()
	orders := orderrepo.NewMemoryOrderRepository()

	materialHandler := materialhttp.NewMaterialHandler(materials, cfg.Inventory.RecomputeStatus)
	productHandler := producthttp.NewProductHandler(products)
	orderHandler := orderhttp.NewOrderHandler(orders, cfg.Planning.UrgentHours, cfg.Planning.WarningHours)
	planningHandler := planninghttp.NewPlanningHandler(materials, products, orders, cfg.Planning.RestockPercent)

	router := mux.NewRouter()
	server.RegisterMiddlewares(router, server.DefaultMiddlewareConfig())

	materialHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	planningHandler.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("addr", cfg.HTTP.Addr).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}

	logger.Logger.Info().Msg("Server stopped")
}
