package config

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	expected := Config{
		SocketDir:      "/tmp",
		GameID:         "gofish",
		HandSize:       7,
		LogLevel:       slog.LevelInfo,
		MaxMessageSize: 4096,
	}
	if cfg != expected {
		t.Fatalf("expected %+v, got %+v", expected, cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOFISH_SOCKET_DIR", "/run/gofish")
	t.Setenv("GOFISH_GAME_ID", "fish")
	t.Setenv("GOFISH_HAND_SIZE", "5")
	t.Setenv("GOFISH_LOG_LEVEL", "debug")
	t.Setenv("GOFISH_MAX_MESSAGE_SIZE", "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SocketDir != "/run/gofish" || cfg.GameID != "fish" || cfg.HandSize != 5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("expected debug level, got %s", cfg.LogLevel)
	}
	if cfg.MaxMessageSize != 1024 {
		t.Fatalf("expected 1024, got %d", cfg.MaxMessageSize)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("GOFISH_HAND_SIZE", "seven")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{SocketDir: "/tmp", GameID: "gofish", HandSize: 7, MaxMessageSize: 4096}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero hand", func(c *Config) { c.HandSize = 0 }},
		{"hand too large", func(c *Config) { c.HandSize = 27 }},
		{"empty game id", func(c *Config) { c.GameID = "" }},
		{"empty socket dir", func(c *Config) { c.SocketDir = "" }},
		{"zero message size", func(c *Config) { c.MaxMessageSize = 0 }},
	}
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
