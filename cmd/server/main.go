package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ordersvc/order-total/internal/config"
	"github.com/ordersvc/order-total/internal/handlers"
	"github.com/ordersvc/order-total/internal/service"
	"github.com/ordersvc/order-total/internal/taxrate"
	"github.com/ordersvc/order-total/pkg/logger"
	"github.com/ordersvc/order-total/pkg/metrics"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting order total api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"rate_service", cfg.RateService.URL,
		"log_level", cfg.LogLevel,
	)

	// Register prometheus collectors
	metrics.Init()

	// Initialize rate-lookup client and tax service
	rateClient := taxrate.NewClient(cfg.RateService.URL, time.Duration(cfg.RateService.TimeoutSeconds)*time.Second)
	taxService := service.NewTaxService(rateClient, log)

	// Initialize handlers and router
	orderHandler := handlers.NewOrderHandler(taxService, log)
	healthHandler := handlers.NewHealthHandler(log)
	r := handlers.NewRouter(orderHandler, healthHandler, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
