// Package config loads skyrecap's config.yaml: Bluesky credentials
// (resolved from environment variables, never stored inline), cache
// location and TTL, and recap defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "config.yaml"
	DefaultService    = "https://bsky.social"
	DefaultCachePath  = ".skyrecap/skyrecap.db"
	DefaultCacheTTL   = 24 * time.Hour
	DefaultLogLevel   = "info"

	DefaultIdentifierEnv = "BSKY_IDENTIFIER"
	DefaultPasswordEnv   = "BSKY_APP_PASSWORD"
)

// Duration wraps time.Duration for YAML unmarshaling from strings like "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

type Config struct {
	Bluesky BlueskyConfig `yaml:"bluesky"`
	Cache   CacheConfig   `yaml:"cache"`
	Recap   RecapConfig   `yaml:"recap"`
	Log     LogConfig     `yaml:"log"`
}

type BlueskyConfig struct {
	Service       string `yaml:"service"`
	IdentifierEnv string `yaml:"identifier_env"`
	PasswordEnv   string `yaml:"app_password_env"`

	// Resolved from env vars at load time.
	Identifier string `yaml:"-"`
	Password   string `yaml:"-"`
}

type CacheConfig struct {
	Path string   `yaml:"path"`
	TTL  Duration `yaml:"ttl"`
}

type RecapConfig struct {
	TimezoneOffsetMinutes int `yaml:"timezone_offset_minutes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads config.yaml from dir, applies defaults, resolves env
// vars, and validates. A missing file is fine: defaults apply, and the
// credential env vars keep their default names.
func Load(dir string) (*Config, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("config dir is required")
	}

	var cfg Config
	path := filepath.Join(dir, DefaultConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyDefaults(&cfg)
	resolveEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Bluesky.Service == "" {
		cfg.Bluesky.Service = DefaultService
	}
	if cfg.Bluesky.IdentifierEnv == "" {
		cfg.Bluesky.IdentifierEnv = DefaultIdentifierEnv
	}
	if cfg.Bluesky.PasswordEnv == "" {
		cfg.Bluesky.PasswordEnv = DefaultPasswordEnv
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = DefaultCachePath
	}
	if cfg.Cache.TTL.Duration == 0 {
		cfg.Cache.TTL.Duration = DefaultCacheTTL
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

func resolveEnv(cfg *Config) {
	cfg.Bluesky.Identifier = os.Getenv(cfg.Bluesky.IdentifierEnv)
	cfg.Bluesky.Password = os.Getenv(cfg.Bluesky.PasswordEnv)
}

func validate(cfg *Config) error {
	if !strings.HasPrefix(cfg.Bluesky.Service, "http://") && !strings.HasPrefix(cfg.Bluesky.Service, "https://") {
		return fmt.Errorf("bluesky.service: %q is not an http(s) URL", cfg.Bluesky.Service)
	}
	if cfg.Cache.TTL.Duration < 0 {
		return errors.New("cache.ttl: must not be negative")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	if cfg.Recap.TimezoneOffsetMinutes < -14*60 || cfg.Recap.TimezoneOffsetMinutes > 14*60 {
		return fmt.Errorf("recap.timezone_offset_minutes: %d is outside the valid UTC offset range", cfg.Recap.TimezoneOffsetMinutes)
	}
	return nil
}
