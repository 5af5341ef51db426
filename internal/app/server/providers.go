package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/eslsoft/courseboxd/internal/adapter/auth"
	"github.com/eslsoft/courseboxd/internal/config"
)

// NewConfig loads the runtime configuration for dependency injection.
func NewConfig() (config.Config, error) {
	return config.Load()
}

// NewLogger builds the process logger from the configured level and format.
func NewLogger(cfg config.Config) (zerolog.Logger, error) {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg config.Config, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "courseboxd").Logger(), nil
}

// NewTokenManager issues and verifies session tokens using the configured secret.
func NewTokenManager(cfg config.Config) (*auth.TokenManager, error) {
	return auth.NewTokenManager(cfg.AuthSecret, cfg.AuthIssuer, cfg.AuthTokenTTL)
}

// NewPasswordHasher returns a bcrypt hasher with the configured cost.
func NewPasswordHasher(cfg config.Config) *auth.BcryptHasher {
	return auth.NewBcryptHasher(cfg.BcryptCost)
}
