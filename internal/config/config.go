package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Arbiter/internal/ahp"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Hermes  HermesConfig  `yaml:"hermes"`
	AHP     AHPConfig     `yaml:"ahp"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port               int    `yaml:"port"`
	MetricsPort        int    `yaml:"metrics_port"`
	AdminToken         string `yaml:"admin_token"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

type AHPConfig struct {
	ConsistencyThreshold float64   `yaml:"consistency_threshold"`
	RandomIndex          []float64 `yaml:"random_index"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RandomIndexTable returns the configured table as the core type.
func (c *Config) RandomIndexTable() ahp.RandomIndexTable {
	t := make(ahp.RandomIndexTable, len(c.AHP.RandomIndex))
	copy(t, c.AHP.RandomIndex)
	return t
}

// Validate rejects settings the evaluator cannot work with.
func (c *Config) Validate() error {
	if c.AHP.ConsistencyThreshold <= 0 {
		return fmt.Errorf("ahp.consistency_threshold must be positive, got %g", c.AHP.ConsistencyThreshold)
	}
	if len(c.AHP.RandomIndex) == 0 {
		return fmt.Errorf("ahp.random_index must not be empty")
	}
	if err := c.RandomIndexTable().Validate(); err != nil {
		return fmt.Errorf("ahp.random_index: %w", err)
	}
	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be positive, got %d", c.Server.RateLimitPerMinute)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		AHP: AHPConfig{
			ConsistencyThreshold: ahp.DefaultThreshold,
			RandomIndex:          ahp.DefaultRandomIndex(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ARBITER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("ARBITER_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("ARBITER_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("ARBITER_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("ARBITER_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("ARBITER_CONSISTENCY_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.AHP.ConsistencyThreshold = f
		}
	}
	if v := os.Getenv("ARBITER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ARBITER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
