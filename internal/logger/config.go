package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the resolved logger setup. Every record carries Service, Version
// and Environment.
type Config struct {
	Level       slog.Level
	JSON        bool
	AddSource   bool
	Service     string
	Version     string
	Environment string
}

// ParseConfig resolves LOG_LEVEL and LOG_FORMAT style strings. Source
// locations are attached only in development environments.
func ParseConfig(level, format, service, version, environment string) (Config, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return Config{}, err
	}

	var json bool
	switch strings.ToLower(format) {
	case LogFormatJSON:
		json = true
	case LogFormatText, "":
	default:
		return Config{}, fmt.Errorf("unknown log format %q", format)
	}

	if service == "" {
		service = DefaultServiceName
	}
	if version == "" {
		version = DefaultVersion
	}

	return Config{
		Level:       lvl,
		JSON:        json,
		AddSource:   IsDevelopment(environment),
		Service:     service,
		Version:     version,
		Environment: environment,
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "":
		return slog.LevelInfo, nil
	case LogLevelWarning:
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// IsDevelopment reports whether env names a local development setup
func IsDevelopment(env string) bool {
	switch strings.ToLower(env) {
	case EnvironmentDev, "development", "local":
		return true
	}
	return false
}

func (c Config) attrs() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.Service),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
