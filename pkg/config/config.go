package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds the resolver service settings. Values come from an optional
// YAML file, overridden by EDGEORIGIN_* environment variables; flags in
// the entrypoint override both.
type Config struct {
	// Addr is the listen address of the HTTP API.
	Addr string `yaml:"addr"`
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
	// DefaultPOP is assumed when a resolve request carries neither a POP
	// code nor a region. Empty means the compiled-in default.
	DefaultPOP string `yaml:"default_pop"`
	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `yaml:"metrics_enabled"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Load reads the configuration file at path (skipped when path is empty),
// applies environment overrides, and fills in defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:            defaultAddr,
		MetricsEnabled:  true,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Addr = getEnv("EDGEORIGIN_ADDR", cfg.Addr)
	cfg.Debug = getEnvBool("EDGEORIGIN_DEBUG", cfg.Debug)
	cfg.DefaultPOP = getEnv("EDGEORIGIN_DEFAULT_POP", cfg.DefaultPOP)
	cfg.MetricsEnabled = getEnvBool("EDGEORIGIN_METRICS", cfg.MetricsEnabled)

	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
