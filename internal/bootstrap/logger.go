package bootstrap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/greenlegacy-ng/greenlegacy/internal/config"
	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// SetupLogger initializes the default slog logger from the app configuration
// and logs the startup banner. Source locations are only added in dev.
func SetupLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	loggerConfig, err := logger.ParseConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}
	l := logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.Level, "source", loggerConfig.AddSource)
	slog.Info(LogMsgStartingApp,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"storage_driver", cfg.StorageDriver,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"admin_auth", cfg.AdminAPIKey != "")

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}

	return l, nil
}
