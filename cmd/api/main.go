package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wifi-on-ice/dashboard/internal/config"
	"github.com/wifi-on-ice/dashboard/repository"
	"github.com/wifi-on-ice/dashboard/web"
)

func main() {
	// Load base .env first, then .env.local (which overrides for local development)
	config.LoadEnvFiles(".")
	cfg := config.Load()

	ctx := context.Background()
	store, closeStore, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize measurement store: %v", err)
	}
	defer closeStore()
	log.Println("Measurement store connection established")

	source, err := repository.NewCachedSource(store, cfg.CacheSize, cfg.QueryTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize measurement cache: %v", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatalf("Failed to parse page templates: %v", err)
	}

	router := NewRouter(cfg, source, tmpl)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Dashboard server starting on :%s", cfg.Port)
	log.Println("Endpoints:")
	log.Println("  GET  /")
	log.Println("  GET  /api/routes")
	log.Println("  GET  /api/routes/stats")
	log.Println("  GET  /api/dashboard")
	log.Println("  POST /api/cache/invalidate")
	log.Println("  GET  /health (with database check)")
	log.Println("  GET  /metrics")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal %v, shutting down...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: graceful shutdown failed: %v", err)
	}
	log.Println("Dashboard server stopped")
}
