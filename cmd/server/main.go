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

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/pkg/logger"
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

	log.Info("starting product catalog server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"store_driver", cfg.Store.Driver,
		"log_level", cfg.LogLevel,
	)

	// Open the store, create the schema and seed it on first boot
	ctx := context.Background()
	store, err := repository.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		log.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Error("failed to prepare store schema", "error", err)
		os.Exit(1)
	}

	inserted, err := store.Seed(ctx)
	if err != nil {
		log.Error("failed to seed store", "error", err)
		os.Exit(1)
	}
	log.Info("store ready", "seeded_products", inserted)

	productRepo := repository.NewSQLProductRepository(store)
	productService := service.NewProductService(productRepo)

	healthHandler := handlers.NewHealthHandler(store, log)
	productHandler := handlers.NewProductHandler(productService, log)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(productHandler, healthHandler, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	if err := serve(srv, cfg.Server.ShutdownTimeout, log); err != nil {
		store.Close()
		os.Exit(1)
	}
}

// serve runs srv until SIGINT or SIGTERM, then shuts it down gracefully
func serve(srv *http.Server, shutdownTimeout int, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("server failed to start", "error", err)
		return err
	case <-quit:
	}

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}
