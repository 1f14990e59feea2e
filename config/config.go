// Package config loads the settings of the gofish binary from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// SocketDir is where hosts create their sockets and joiners look for them.
	SocketDir      string     `env:"GOFISH_SOCKET_DIR" envDefault:"/tmp"`
	GameID         string     `env:"GOFISH_GAME_ID" envDefault:"gofish"`
	HandSize       int        `env:"GOFISH_HAND_SIZE" envDefault:"7"`
	LogLevel       slog.Level `env:"GOFISH_LOG_LEVEL" envDefault:"info"`
	MaxMessageSize int        `env:"GOFISH_MAX_MESSAGE_SIZE" envDefault:"4096"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that two players can be dealt a hand from one deck.
func (c Config) Validate() error {
	if c.HandSize < 1 || 2*c.HandSize > 52 {
		return fmt.Errorf("%w: hand size %d", ErrInvalidConfig, c.HandSize)
	}
	if c.GameID == "" {
		return fmt.Errorf("%w: empty game id", ErrInvalidConfig)
	}
	if c.MaxMessageSize < 1 {
		return fmt.Errorf("%w: max message size %d", ErrInvalidConfig, c.MaxMessageSize)
	}
	if c.SocketDir == "" {
		return fmt.Errorf("%w: empty socket directory", ErrInvalidConfig)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
