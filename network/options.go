package network

import (
	"io"
	"log/slog"
)

// DefaultMaxMessageSize bounds a single Receive.
const DefaultMaxMessageSize = 4096

type connConfig struct {
	maxMessageSize int
	logger         *slog.Logger
}

type ConnOption func(connConfig) connConfig

func newConnConfig(opts []ConnOption) connConfig {
	c := connConfig{
		maxMessageSize: DefaultMaxMessageSize,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		c = opt(c)
	}
	return c
}

// WithMaxMessageSize sets the largest message Send accepts and Receive reads.
func WithMaxMessageSize(size int) ConnOption {
	return func(c connConfig) connConfig {
		if size > 0 {
			c.maxMessageSize = size
		}
		return c
	}
}

func WithLogger(logger *slog.Logger) ConnOption {
	return func(c connConfig) connConfig {
		if logger != nil {
			c.logger = logger
		}
		return c
	}
}
