package config

import "time"

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Defaults applied when a key is unset or unparseable
const (
	DefaultPort               = "8080"
	DefaultEnvironment        = "dev"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultServiceName        = "greenlegacy"
	DefaultVersion            = "dev"
	DefaultDBMaxConns         = 20
	DefaultDBMaxConnIdleTime  = 5 * time.Minute
	DefaultDBMaxConnLifetime  = 30 * time.Minute
	DefaultStatsCacheTTL      = 30 * time.Second
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultRateLimitPerWindow = 1000

	DefaultEventLogRetention       = 30 * 24 * time.Hour
	DefaultEventLogCleanupInterval = time.Hour
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword  = "change_this_secure_password"
	ExampleAdminAPIKey = "generate_with_openssl_rand_hex_32"
)
