package daemon

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the top-level configuration.
// Maps directly to ~/.tagcenter/config.toml.
type Config struct {
	API      APIConfig      `toml:"api"`
	Database DatabaseConfig `toml:"database"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Tracing  TracingConfig  `toml:"tracing"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	RequestTimeout string `toml:"request_timeout"`
}

// Addr returns host:port.
func (c APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig selects the store. Driver is "sqlite" or "postgres".
type DatabaseConfig struct {
	Driver string `toml:"driver"`
	Dir    string `toml:"dir"`
	URI    string `toml:"uri"`
}

// MetricsConfig controls the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// TracingConfig controls the in-memory span buffer behind /debug/spans.
type TracingConfig struct {
	Enabled  bool `toml:"enabled"`
	MaxSpans int  `toml:"max_spans"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host:           "127.0.0.1",
			Port:           8080,
			RequestTimeout: "30s",
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Dir:    Home(),
		},
		Metrics: MetricsConfig{Enabled: true},
		Tracing: TracingConfig{Enabled: true, MaxSpans: 10_000},
	}
}

// Home returns the tagcenter data directory (~/.tagcenter).
func Home() string {
	if env := os.Getenv("TAGCENTER_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tagcenter"
	}
	return filepath.Join(home, ".tagcenter")
}

// LoadConfig reads path (skipped when empty or missing), then a .env file in
// the working directory if present, then TAGCENTER_* environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] .env not loaded: %v", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TAGCENTER_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("TAGCENTER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TAGCENTER_PORT: %w", err)
		}
		cfg.API.Port = port
	}
	if v := os.Getenv("TAGCENTER_DB_DRIVER"); v != "" {
		cfg.Database.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("TAGCENTER_DB_DIR"); v != "" {
		cfg.Database.Dir = v
	}
	if v := os.Getenv("TAGCENTER_DATABASE_URI"); v != "" {
		cfg.Database.URI = v
	}
	if v := os.Getenv("TAGCENTER_METRICS"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TAGCENTER_METRICS: %w", err)
		}
		cfg.Metrics.Enabled = enabled
	}
	return nil
}

// Validate rejects configurations the daemon cannot start with.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Dir == "" {
			return fmt.Errorf("database.dir is required for sqlite")
		}
	case DriverPostgres:
		if c.Database.URI == "" {
			return fmt.Errorf("database.uri is required for postgres")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("api.port %d out of range", c.API.Port)
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	return nil
}

// RequestTimeout parses api.request_timeout. Empty means 30s.
func (c Config) RequestTimeout() (time.Duration, error) {
	if c.API.RequestTimeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(c.API.RequestTimeout)
	if err != nil {
		return 0, fmt.Errorf("api.request_timeout: %w", err)
	}
	return d, nil
}
