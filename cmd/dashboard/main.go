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
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/dashboard"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting product dashboard",
		"port", cfg.Dashboard.Port,
		"host", cfg.Dashboard.Host,
		"catalog_url", cfg.Dashboard.CatalogURL,
	)

	client := dashboard.NewClient(cfg.Dashboard.CatalogURL, time.Duration(cfg.Dashboard.Timeout)*time.Second)
	handler := dashboard.NewHandler(client, log)

	addr := fmt.Sprintf("%s:%s", cfg.Dashboard.Host, cfg.Dashboard.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      dashboard.NewRouter(handler, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("dashboard listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("dashboard failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down dashboard...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("dashboard forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("dashboard stopped gracefully")
}
