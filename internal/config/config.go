package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend names
const (
	StoragePostgres = "postgres"
	StorageFile     = "file"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogDir      string
	Environment string
	Version     string
	APIKey      string // API key for authentication

	// TrustedProxies lists proxy IPs whose X-Forwarded-For headers are trusted
	TrustedProxies []string

	// Storage selects where player snapshots live
	StorageBackend string
	DataDir        string // file backend
	DBUser         string // postgres backend
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string

	// TelegramBotToken signs login verification; DevMode allows a mock
	// login when running outside Telegram
	TelegramBotToken string
	DevMode          bool

	// TickInterval is how often the scheduler advances sessions
	TickInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		LogDir:           getEnv("LOG_DIR", "logs"),
		Environment:      getEnv("ENVIRONMENT", "dev"),
		Version:          getEnv("VERSION", "dev"),
		APIKey:           getEnv("API_KEY", ""),
		StorageBackend:   getEnv("STORAGE_BACKEND", StorageFile),
		DataDir:          getEnv("DATA_DIR", "data"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "kombinat"),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	tickStr := getEnv("TICK_INTERVAL", "5s")
	tick, err := time.ParseDuration(tickStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TICK_INTERVAL value: %w", err)
	}
	cfg.TickInterval = tick

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	cfg.DevMode, err = strconv.ParseBool(getEnv("DEV_MODE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEV_MODE value: %w", err)
	}

	if cfg.StorageBackend != StoragePostgres && cfg.StorageBackend != StorageFile {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND value: %q", cfg.StorageBackend)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.TelegramBotToken == "" && !cfg.DevMode {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN must be set outside dev mode")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
