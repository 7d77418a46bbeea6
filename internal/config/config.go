package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rkradadiya/chatroom/internal/domain"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port      string
	StaticDir string

	// Security
	AllowedOrigins []string

	// Logging
	LogLevel string

	// WebSocket
	MaxMessageSize int

	// Persistence
	DatabasePath string
	HistoryLimit int
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Port:           "3000",
		StaticDir:      "./public",
		AllowedOrigins: []string{"http://localhost:3000"},
		LogLevel:       "info", // Options: debug, info, warn, error, silent
		MaxMessageSize: domain.MaxMessageSize,
		DatabasePath:   "chatroom.db",
		HistoryLimit:   domain.DefaultHistoryLimit,
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	cfg := DefaultConfig()

	// Server
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.StaticDir = dir
	}

	// Security
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = parseOrigins(origins)
	}

	// Logging
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	// WebSocket
	if size := os.Getenv("MAX_MESSAGE_SIZE"); size != "" {
		if val, err := strconv.Atoi(size); err == nil && val > 0 {
			cfg.MaxMessageSize = val
		}
	}

	// Persistence
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.DatabasePath = path
	}

	if limit := os.Getenv("HISTORY_LIMIT"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 {
			cfg.HistoryLimit = val
		}
	}

	return cfg
}

// parseOrigins parses comma-separated origins
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Global configuration instance
var AppConfig = LoadFromEnv()
