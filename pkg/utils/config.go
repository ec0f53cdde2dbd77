package utils

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "NEWSPORTAL_CONFIG"
	dbPathEnv     = "NEWSPORTAL_DB_PATH"
	httpAddrEnv   = "NEWSPORTAL_HTTP_ADDR"
	logLevelEnv   = "NEWSPORTAL_LOG_LEVEL"
	jwtSecretEnv  = "NEWSPORTAL_JWT_SECRET"
	jwtIssuerEnv  = "NEWSPORTAL_JWT_ISSUER"
	jwtTTLEnv     = "NEWSPORTAL_JWT_TTL_HOURS"
)

type Config struct {
	HTTP            HTTPConfig       `yaml:"http"`
	Database        DatabaseConfig   `yaml:"database"`
	Log             LogConfig        `yaml:"log"`
	Auth            AuthConfig       `yaml:"auth"`
	Listing         ListingConfig    `yaml:"listing"`
	SourceOverrides []OverrideConfig `yaml:"source_overrides"`
	Feeds           []FeedConfig     `yaml:"feeds"`
	Ingest          IngestConfig     `yaml:"ingest"`

	// Warnings collects problems met while loading; the caller logs them.
	Warnings []string `yaml:"-"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig.Path empty means the XDG default.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret"`
	JWTIssuer   string        `yaml:"jwt_issuer"`
	JWTTTLHours int           `yaml:"jwt_ttl_hours"`
	JWTDuration time.Duration `yaml:"-"`
}

// ListingConfig bounds page sizes and the smart-filter superset.
type ListingConfig struct {
	DefaultPageSize  int `yaml:"default_page_size"`
	MaxPageSize      int `yaml:"max_page_size"`
	SupersetMultiple int `yaml:"superset_multiple"`
	SupersetCap      int `yaml:"superset_cap"`
}

// OverrideConfig pins every article of a source to one category.
// Match is "exact" (default) or "prefix"; both compare case-insensitively.
type OverrideConfig struct {
	Pattern  string `yaml:"pattern"`
	Match    string `yaml:"match"`
	Category string `yaml:"category"`
}

type FeedConfig struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Language string `yaml:"language"`
	Category string `yaml:"category"`
}

// IngestConfig.Schedule is a cron spec; "off" disables scheduled imports.
type IngestConfig struct {
	Schedule string `yaml:"schedule"`
}

func defaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{Addr: ":8080"},
		Log:  LogConfig{Level: "info", Format: "json"},
		Auth: AuthConfig{
			// dev default, set NEWSPORTAL_JWT_SECRET in production
			JWTSecret:   "dev-secret-change-me",
			JWTIssuer:   "newsportal",
			JWTTTLHours: 24,
		},
		Listing: ListingConfig{
			DefaultPageSize:  20,
			MaxPageSize:      100,
			SupersetMultiple: 10,
			SupersetCap:      500,
		},
		Ingest: IngestConfig{Schedule: "@every 15m"},
	}
}

// Load reads the YAML file named by NEWSPORTAL_CONFIG (if any), merges it
// over the defaults and applies environment overrides. A missing or broken
// file falls back to defaults and is reported in Warnings.
func Load() Config {
	return LoadFrom(os.Getenv(configPathEnv))
}

// LoadFrom is Load with an explicit file path; empty means defaults only.
func LoadFrom(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		fileCfg, err := ReadFile(path)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings, err.Error())
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()
	cfg.Auth.JWTDuration = time.Duration(cfg.Auth.JWTTTLHours) * time.Hour
	return cfg
}

// ReadFile parses a YAML config file without applying defaults.
func ReadFile(path string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, &ConfigError{Path: path, Err: err}
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, &ConfigError{Path: path, Err: err}
	}
	return c, nil
}

type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return "config " + e.Path + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }

func mergeConfig(base, override Config) Config {
	if override.HTTP.Addr != "" {
		base.HTTP.Addr = override.HTTP.Addr
	}
	if override.Database.Path != "" {
		base.Database.Path = override.Database.Path
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		base.Log.Format = override.Log.Format
	}
	if override.Auth.JWTSecret != "" {
		base.Auth.JWTSecret = override.Auth.JWTSecret
	}
	if override.Auth.JWTIssuer != "" {
		base.Auth.JWTIssuer = override.Auth.JWTIssuer
	}
	if override.Auth.JWTTTLHours > 0 {
		base.Auth.JWTTTLHours = override.Auth.JWTTTLHours
	}
	if override.Listing.DefaultPageSize > 0 {
		base.Listing.DefaultPageSize = override.Listing.DefaultPageSize
	}
	if override.Listing.MaxPageSize > 0 {
		base.Listing.MaxPageSize = override.Listing.MaxPageSize
	}
	if override.Listing.SupersetMultiple > 0 {
		base.Listing.SupersetMultiple = override.Listing.SupersetMultiple
	}
	if override.Listing.SupersetCap > 0 {
		base.Listing.SupersetCap = override.Listing.SupersetCap
	}
	if len(override.SourceOverrides) > 0 {
		base.SourceOverrides = override.SourceOverrides
	}
	if len(override.Feeds) > 0 {
		base.Feeds = override.Feeds
	}
	if override.Ingest.Schedule != "" {
		base.Ingest.Schedule = override.Ingest.Schedule
	}
	return base
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(dbPathEnv); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(httpAddrEnv); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(jwtSecretEnv); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv(jwtIssuerEnv); v != "" {
		c.Auth.JWTIssuer = v
	}
	if v := strings.TrimSpace(os.Getenv(jwtTTLEnv)); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			c.Warnings = append(c.Warnings, jwtTTLEnv+": expected a positive number of hours, keeping "+strconv.Itoa(c.Auth.JWTTTLHours))
		} else {
			c.Auth.JWTTTLHours = hours
		}
	}
}
