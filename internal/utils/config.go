package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServiceName is reported by the status endpoint and never varies.
const ServiceName = "nougat-extraction"

// Config is the full service configuration. It is resolved once at startup.
type Config struct {
	Server struct {
		Host    string `yaml:"host"`
		Port    string `yaml:"port"`
		Prefork bool   `yaml:"prefork"`
	} `yaml:"server"`

	Limits struct {
		MaxUploadBytes int `yaml:"max_upload_bytes"`
	} `yaml:"limits"`

	Logger struct {
		File       string `yaml:"file"`
		Level      string `yaml:"level"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"logger"`

	Cache struct {
		RedisHost   string `yaml:"redis_host"`
		RateLimitDB int    `yaml:"redis_rate_db"`
	} `yaml:"cache"`

	RateLimiter struct {
		EnableUserLimiter bool          `yaml:"enable_user_limiter"`
		UserLimit         int           `yaml:"user_limit"`
		Interval          time.Duration `yaml:"interval"`
	} `yaml:"rate_limiter"`

	Extraction struct {
		MockMode bool `yaml:"mock_mode"`
	} `yaml:"extraction"`
}

// AppConfig holds the configuration loaded by LoadConfig.
var AppConfig Config

var appConfigMu sync.RWMutex

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = ":8000"
	cfg.Limits.MaxUploadBytes = 50 << 20
	cfg.Logger.File = "logs/nougat.log"
	cfg.Logger.Level = "info"
	cfg.Logger.MaxSizeMB = 10
	cfg.Logger.MaxBackups = 3
	cfg.Logger.MaxAgeDays = 28
	cfg.RateLimiter.Interval = time.Minute
	cfg.Extraction.MockMode = true
	return cfg
}

// ParseMockMode interprets a MOCK_MODE value. Anything other than a
// case-insensitive "false" enables mock mode.
func ParseMockMode(v string) bool {
	return !strings.EqualFold(v, "false")
}

// LoadConfig loads .env, reads the YAML file at CONFIG_PATH (default
// config.yaml) and applies environment overrides. It panics on invalid values.
func LoadConfig() Config {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg := LoadConfigFrom(path)

	appConfigMu.Lock()
	AppConfig = cfg
	appConfigMu.Unlock()
	return cfg
}

// LoadConfigFrom reads the config file at path on top of DefaultConfig.
// A missing file is not an error.
func LoadConfigFrom(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		panic(fmt.Sprintf("read config %s: %v", path, err))
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			panic(fmt.Sprintf("parse config %s: %v", path, err))
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config %s: %v", path, err))
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("MOCK_MODE"); ok {
		cfg.Extraction.MockMode = ParseMockMode(v)
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Cache.RedisHost = v
	}
}

// Validate checks the values that would make the server misbehave.
func (cfg Config) Validate() error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is empty")
	}
	if cfg.Limits.MaxUploadBytes <= 0 {
		return errors.New("limits.max_upload_bytes must be positive")
	}
	if cfg.RateLimiter.UserLimit < 0 {
		return errors.New("rate_limiter.user_limit must not be negative")
	}
	if (cfg.RateLimiter.EnableUserLimiter || cfg.RateLimiter.UserLimit > 0) && cfg.RateLimiter.Interval <= 0 {
		return errors.New("rate_limiter.interval must be positive")
	}
	return nil
}

// GetConfig returns the configuration loaded at startup.
func GetConfig() Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return AppConfig
}
