package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rkradadiya/chatroom/internal/config"
	httpHandler "github.com/rkradadiya/chatroom/internal/delivery/http"
	"github.com/rkradadiya/chatroom/internal/delivery/ws"
	"github.com/rkradadiya/chatroom/internal/middleware"
	"github.com/rkradadiya/chatroom/internal/storage"
	"github.com/rkradadiya/chatroom/internal/usecase"
)

func main() {
	// Load .env file (ignore error if not exists, e.g. in production)
	_ = godotenv.Load()

	// Reload config after loading .env
	config.AppConfig = config.LoadFromEnv()
	cfg := config.AppConfig

	// Configuring Logging
	if cfg.LogLevel == "silent" || cfg.LogLevel == "off" {
		log.SetOutput(io.Discard)
	}

	// Message persistence
	store, err := storage.NewStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.Migrate(migrateCtx); err != nil {
		cancelMigrate()
		log.Fatalf("migrate store: %v", err)
	}
	cancelMigrate()

	history := usecase.NewMessageHistory(store, cfg.HistoryLimit)

	// The coordinator
	hub := ws.NewHub(history)
	go hub.Run()

	handler := httpHandler.NewHandler(hub)

	// Setup routes
	mux := http.NewServeMux()

	// Static browser client
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	// WebSocket route
	mux.HandleFunc("/ws", handler.HandleWebSocket)

	// Health check
	mux.HandleFunc("/healthz", handler.HandleHealth)

	// Apply security headers middleware to all requests
	securedHandler := middleware.SecurityHeaders(mux)

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      securedHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("chatroom running at http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
