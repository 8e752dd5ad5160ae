// Package config holds the service configuration: server address, API keys,
// pattern table sources, and logging. Values load from YAML with
// SEALSTACK_* environment overrides applied on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Patterns PatternsConfig `yaml:"patterns"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig configures the HTTP shell.
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr"`

	// APIKeys maps accepted API keys to a display label used in request
	// logs. An empty map disables authentication (local demo mode).
	APIKeys map[string]string `yaml:"api_keys"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PatternsConfig configures where the pattern table comes from.
type PatternsConfig struct {
	// Paths lists external YAML tables loaded after the embedded corpus.
	Paths []string `yaml:"paths"`

	// DisableEmbedded skips the built-in corpus, leaving only Paths.
	DisableEmbedded bool `yaml:"disable_embedded"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Development switches to the human-readable console encoder.
	Development bool `yaml:"development"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			APIKeys:         map[string]string{},
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Patterns: PatternsConfig{},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file over the defaults, then applies environment
// overrides. An empty path skips the file and returns defaults plus env.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: want debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}

// applyEnv layers SEALSTACK_* environment variables over the loaded values.
func (c *Config) applyEnv() {
	if v := os.Getenv("SEALSTACK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SEALSTACK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SEALSTACK_DEV"); v != "" {
		if dev, err := strconv.ParseBool(v); err == nil {
			c.Logging.Development = dev
		}
	}
	if v := os.Getenv("SEALSTACK_API_KEYS"); v != "" {
		// Comma-separated key=label pairs.
		keys := map[string]string{}
		for _, pair := range strings.Split(v, ",") {
			key, label, _ := strings.Cut(strings.TrimSpace(pair), "=")
			if key == "" {
				continue
			}
			if label == "" {
				label = "env"
			}
			keys[key] = label
		}
		c.Server.APIKeys = keys
	}
	if v := os.Getenv("SEALSTACK_PATTERN_PATHS"); v != "" {
		c.Patterns.Paths = strings.Split(v, string(os.PathListSeparator))
	}
}

// AuthEnabled reports whether API-key checks are active.
func (c *Config) AuthEnabled() bool {
	return len(c.Server.APIKeys) > 0
}
