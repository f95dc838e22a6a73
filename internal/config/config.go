package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full runtime configuration, loaded from the environment
// (a .env file is read by godotenv/autoload in main before this runs).

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Cross-replica change feed. Empty disables the feed.
	RedisAddr   string `envconfig:"REDIS_ADDR"`
	SyncChannel string `envconfig:"SYNC_CHANNEL" default:"kampung-chill-sync"`

	// Casual staff deterrent, not a security boundary.
	StaffPasscode string `envconfig:"STAFF_PASSCODE" default:"1234"`

	// AI flavour guide. Empty key serves static fallbacks.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`

	// Best-effort new-order notifications. Empty disables them.
	OrderWebhookURL string `envconfig:"ORDER_WEBHOOK_URL"`
}

func LoadConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to process configuration: %v", err)
	}
	return &cfg
}
