package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is populated from environment variables once at process start.
type Config struct {
	App      AppConfig
	Bot      BotConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	StaticDir   string // mini-app assets
}

type BotConfig struct {
	Token      string
	AdminIDs   []int64 // telegram user ids allowed to mutate the catalog
	WebAppURL  string  // public base URL of the mini-app
	PollTO     time.Duration
	SessionTTL time.Duration // idle wizard sessions are evicted after this
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Terp Cards Bot"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			StaticDir:   getEnv("WEBAPP_STATIC_DIR", "./webapp"),
		},
		Bot: BotConfig{
			Token:      getEnv("BOT_TOKEN", ""),
			AdminIDs:   getEnvInt64List("BOT_ADMIN_IDS"),
			WebAppURL:  getEnv("WEBAPP_URL", ""),
			PollTO:     time.Duration(getEnvInt("BOT_POLL_TIMEOUT", 10)) * time.Second,
			SessionTTL: time.Duration(getEnvInt("BOT_SESSION_TTL_MIN", 30)) * time.Minute,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "terpcards"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
			MinConns: getEnvInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate enforces the fatal startup conditions.
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("BOT_TOKEN must be set")
	}
	if c.Database.Password == "" && c.App.Environment == "production" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}
	if len(c.Bot.AdminIDs) == 0 {
		fmt.Println("WARNING: BOT_ADMIN_IDS not set - catalog mutations will be rejected for everyone")
	}
	return nil
}

// IsAdmin checks the fixed allow-list.
func (c *BotConfig) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt64List(key string) []int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
