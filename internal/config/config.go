package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/greenlegacy-ng/greenlegacy/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	Environment string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	LogFormat   string `validate:"oneof=text json"`
	ServiceName string `validate:"required"`
	Version     string

	StorageDriver     string `validate:"oneof=memory postgres"`
	DBUser            string `validate:"required_if=StorageDriver postgres"`
	DBPassword        string
	DBHost            string `validate:"required_if=StorageDriver postgres"`
	DBPort            string `validate:"required_if=StorageDriver postgres"`
	DBName            string `validate:"required_if=StorageDriver postgres"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	MapAccessToken         string
	PaymentCheckoutBaseURL string `validate:"omitempty,url"`
	StatsCacheTTL          time.Duration
	ShutdownTimeout        time.Duration `validate:"gt=0"`
	RateLimitPerWindow     int           `validate:"min=1"`
	TrustedProxies         []string      `validate:"dive,ip"`
	AdminAPIKey            string        // empty leaves tree writes open

	EventLogRetention       time.Duration `validate:"gt=0"`
	EventLogCleanupInterval time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "greenlegacy"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		MapAccessToken:         getEnv("MAPBOX_ACCESS_TOKEN", ""),
		PaymentCheckoutBaseURL: getEnv("PAYMENT_CHECKOUT_BASE_URL", ""),
		StatsCacheTTL:          getEnvAsDuration("STATS_CACHE_TTL", DefaultStatsCacheTTL),
		ShutdownTimeout:        getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		RateLimitPerWindow:     getEnvAsInt("RATE_LIMIT_PER_WINDOW", DefaultRateLimitPerWindow),
		TrustedProxies:         getEnvAsList("TRUSTED_PROXIES"),
		AdminAPIKey:            getEnv("ADMIN_API_KEY", ""),

		EventLogRetention:       getEnvAsDuration("EVENT_LOG_RETENTION", DefaultEventLogRetention),
		EventLogCleanupInterval: getEnvAsDuration("EVENT_LOG_CLEANUP_INTERVAL", DefaultEventLogCleanupInterval),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration falls back to defaultValue when the variable is unset or unparseable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// UsesPostgres reports whether the postgres driver is selected
func (c *Config) UsesPostgres() bool {
	return c.StorageDriver == DriverPostgres
}
