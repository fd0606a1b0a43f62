// Package config loads server configuration from defaults, a YAML file and
// the environment, in that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	entity "github.com/KirkDiggler/rpg-combat/internal/entities/combat"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
)

// Environment variables read by ApplyEnv
const (
	EnvListenAddress   = "RPG_COMBAT_LISTEN_ADDRESS"
	EnvPort            = "RPG_COMBAT_PORT"
	EnvLogLevel        = "RPG_COMBAT_LOG_LEVEL"
	EnvShutdownTimeout = "RPG_COMBAT_SHUTDOWN_TIMEOUT"
)

// Server holds all configuration for the combat server.
type Server struct {
	// Network
	ListenAddress string `yaml:"listen_address"`
	Port          int    `yaml:"port"`

	// Logging
	LogLevel string `yaml:"log_level"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Gear registered at startup
	Gear []GearEntry `yaml:"gear"`
}

// GearEntry is one item of the startup gear catalog. Omitted modifiers
// leave the stat untouched.
type GearEntry struct {
	Name string `yaml:"name"`
	AP   *int32 `yaml:"ap"`
	DP   *int32 `yaml:"dp"`
	HP   *int32 `yaml:"hp"`
	Slot string `yaml:"slot"`
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		ListenAddress:   "0.0.0.0",
		Port:            50051,
		LogLevel:        "info",
		ShutdownTimeout: 30 * time.Second,
		Gear: []GearEntry{
			{Name: "Axe", AP: entity.Mod(3), DP: entity.Mod(5), Slot: entity.SlotHand.String()},
			{Name: "Leather Vest", DP: entity.Mod(2), HP: entity.Mod(5), Slot: entity.SlotTorso.String()},
			{Name: "Boots", DP: entity.Mod(1), Slot: entity.SlotFoot.String()},
		},
	}
}

// LoadServer loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields with any RPG_COMBAT_* variables that are set.
func (s *Server) ApplyEnv() error {
	if v := os.Getenv(EnvListenAddress); v != "" {
		s.ListenAddress = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.InvalidArgumentf("%s: %q is not a port", EnvPort, v)
		}
		s.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.InvalidArgumentf("%s: %q is not a duration", EnvShutdownTimeout, v)
		}
		s.ShutdownTimeout = d
	}
	return nil
}

// Validate checks the loaded configuration
func (s *Server) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.Port <= 0 || s.Port > 65535 {
		vb.InvalidField("port", fmt.Sprintf("%d out of range", s.Port))
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		vb.InvalidField("log_level", s.LogLevel)
	}
	if s.ShutdownTimeout <= 0 {
		vb.InvalidField("shutdown_timeout", "must be positive")
	}
	for i, g := range s.Gear {
		if _, ok := entity.ParseGearSlot(g.Slot); !ok {
			vb.InvalidField(fmt.Sprintf("gear[%d].slot", i), g.Slot)
		}
	}

	return vb.Build()
}

// Addr returns the host:port the server listens on
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.ListenAddress, s.Port)
}

// SlogLevel returns the configured level, defaulting to info
func (s *Server) SlogLevel() slog.Level {
	level, err := ParseLogLevel(s.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel maps debug, info, warn and error to slog levels
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
