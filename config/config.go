// Package config loads runtime configuration for the example binaries from
// environment variables. Every variable has a working default so a bare
// `go run` starts a usable bot.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/bankbuddy/bankbuddy/locale"
	"github.com/bankbuddy/bankbuddy/logging"
)

// Config holds all the configuration for a bot instance.
type Config struct {
	Language      locale.Language
	DatabasePath  string
	ResponseDelay time.Duration
	LogLevel      logging.LogLevel
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Language:      locale.English,
		DatabasePath:  "", // empty means in-memory history
		ResponseDelay: time.Second,
		LogLevel:      logging.LogLevelInfo,
	}

	if lang := os.Getenv("BANKBUDDY_LANG"); lang != "" {
		switch locale.Language(lang) {
		case locale.English, locale.Hindi, locale.Tamil, locale.Telugu:
			cfg.Language = locale.Language(lang)
		default:
			return nil, fmt.Errorf("unsupported BANKBUDDY_LANG %q", lang)
		}
	}

	if path := os.Getenv("BANKBUDDY_DB_PATH"); path != "" {
		cfg.DatabasePath = path
	}

	if delay := os.Getenv("BANKBUDDY_RESPONSE_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return nil, fmt.Errorf("invalid BANKBUDDY_RESPONSE_DELAY: %w", err)
		}
		cfg.ResponseDelay = d
	}

	switch os.Getenv("BANKBUDDY_LOG_LEVEL") {
	case "":
	case "debug":
		cfg.LogLevel = logging.LogLevelDebug
	case "info":
		cfg.LogLevel = logging.LogLevelInfo
	case "warn":
		cfg.LogLevel = logging.LogLevelWarn
	case "error":
		cfg.LogLevel = logging.LogLevelError
	default:
		return nil, fmt.Errorf("unsupported BANKBUDDY_LOG_LEVEL %q", os.Getenv("BANKBUDDY_LOG_LEVEL"))
	}

	return cfg, nil
}
