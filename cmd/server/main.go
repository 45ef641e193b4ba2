package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/kharisma-air/admin-gateway/internal/airline"
	"github.com/kharisma-air/admin-gateway/internal/handlers"
	"github.com/kharisma-air/admin-gateway/internal/router"
	"github.com/kharisma-air/admin-gateway/internal/service"
	"github.com/kharisma-air/admin-gateway/internal/trip"
	"github.com/kharisma-air/admin-gateway/internal/websocket"
)

const (
	DefaultPort            = "8080"
	DefaultAirlineAPIURL   = "http://localhost:9090/api"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultPollSeconds     = 15
)

func main() {
	// Get configuration from environment
	port := os.Getenv("ADMIN_PORT")
	if port == "" {
		port = DefaultPort
	}

	apiURL := os.Getenv("AIRLINE_API_URL")
	if apiURL == "" {
		apiURL = DefaultAirlineAPIURL
	}

	pollSeconds := DefaultPollSeconds
	if v := os.Getenv("STATUS_POLL_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Fatalf("Invalid STATUS_POLL_SECONDS: %q", v)
		}
		pollSeconds = n
	}

	// Upstream airline API client
	apiClient := airline.NewClient(apiURL, DefaultUpstreamTimeout)

	// Flight status feed
	hub := websocket.NewHub()
	go hub.Run()

	watchCtx, stopWatcher := context.WithCancel(context.Background())
	defer stopWatcher()
	watcher := websocket.NewWatcher(apiClient, hub, time.Duration(pollSeconds)*time.Second)
	go watcher.Run(watchCtx)

	// Initialize services
	sessions := trip.NewSessions()
	adminService := service.NewAdminService(apiClient, sessions)

	// Initialize handlers
	h := handlers.NewHandler(adminService)

	// Create router
	r := router.SetupRouter(h, hub)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Admin gateway starting on port %s", port)
		log.Printf("Upstream airline API at %s", apiURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopWatcher()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
