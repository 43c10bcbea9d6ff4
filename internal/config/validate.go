package config

import (
	"errors"
	"fmt"
	"time"

	"solkit/internal/logging"
)

// ErrConfigNil indicates a nil config was passed to Validate.
var ErrConfigNil = errors.New("config is nil")

// Validate checks cfg for values the server cannot run with.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ErrConfigNil
	}
	if cfg.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	timeouts := []struct {
		key string
		d   time.Duration
	}{
		{"server.read_timeout", cfg.Server.ReadTimeout},
		{"server.write_timeout", cfg.Server.WriteTimeout},
		{"server.request_timeout", cfg.Server.RequestTimeout},
		{"server.shutdown_timeout", cfg.Server.ShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.d <= 0 {
			return fmt.Errorf("%s must be positive", t.key)
		}
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return errors.New("server.max_body_bytes must be positive")
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		return errors.New("cors.allowed_origins must list at least one origin")
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch cfg.Log.Format {
	case "", logging.FormatAuto, logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("invalid log format %q", cfg.Log.Format)
	}
	return nil
}
