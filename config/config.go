// Package config loads the frontend configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Listen is the address the web server binds to.
	Listen string `yaml:"listen"`
	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Only enable it behind a proxy that overwrites them.
	TrustProxy bool `yaml:"trust_proxy"`

	Backend   BackendConfig   `yaml:"backend"`
	Session   SessionConfig   `yaml:"session"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds a single backend call, e.g. "15s". Zero disables it.
	Timeout string `yaml:"timeout"`
}

type SessionConfig struct {
	DatabasePath string `yaml:"database_path"`
	CookieName   string `yaml:"cookie_name"`
	// Secret signs the session cookie. When empty a random secret is used,
	// which logs every browser out on restart.
	Secret string `yaml:"secret"`
	// CookieMaxAge in seconds, 0 keeps the cookie for the browser session.
	CookieMaxAge int  `yaml:"cookie_max_age"`
	SecureCookie bool `yaml:"secure_cookie"`
}

// RateLimitConfig throttles login and registration attempts per client IP.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
	// MaxClients bounds the number of tracked addresses. Once reached, new
	// addresses share a single limiter.
	MaxClients int `yaml:"max_clients"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func DefaultConfig() *Config {
	return &Config{
		Listen: ":3000",
		Backend: BackendConfig{
			BaseURL: "http://localhost:5000",
			Timeout: "15s",
		},
		Session: SessionConfig{
			DatabasePath: "donatehub.db",
			CookieName:   "session",
		},
		RateLimit: RateLimitConfig{
			Enabled:    true,
			RPS:        1,
			Burst:      5,
			MaxClients: 10000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadDotEnv loads environment files into the process environment. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cant load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads the YAML file at path on top of the defaults and then applies
// environment overrides. An empty path or a missing file yields the defaults
// plus environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("cant read config: %w", err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("cant parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Listen = ":" + port
	}
	if listen := os.Getenv("DONATEHUB_LISTEN"); listen != "" {
		cfg.Listen = listen
	}
	if baseURL := os.Getenv("API_URL"); baseURL != "" {
		cfg.Backend.BaseURL = baseURL
	}
	if timeout := os.Getenv("BACKEND_TIMEOUT"); timeout != "" {
		cfg.Backend.Timeout = timeout
	}
	if path := os.Getenv("DONATEHUB_DB"); path != "" {
		cfg.Session.DatabasePath = path
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if trust := os.Getenv("TRUST_PROXY"); trust != "" {
		value, err := strconv.ParseBool(trust)
		if err != nil {
			return fmt.Errorf("TRUST_PROXY: %w", err)
		}
		cfg.TrustProxy = value
	}
	if rps := os.Getenv("LOGIN_RATE_RPS"); rps != "" {
		value, err := strconv.ParseFloat(rps, 64)
		if err != nil {
			return fmt.Errorf("LOGIN_RATE_RPS: %w", err)
		}
		cfg.RateLimit.RPS = value
	}
	return nil
}

// Validate checks the values Load can't default.
func (cfg *Config) Validate() error {
	if cfg.Backend.BaseURL == "" {
		return errors.New("backend.base_url must be set")
	}
	if cfg.Session.DatabasePath == "" {
		return errors.New("session.database_path must be set")
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "session"
	}
	if _, err := cfg.BackendTimeout(); err != nil {
		return err
	}
	if cfg.RateLimit.Enabled && (cfg.RateLimit.RPS <= 0 || cfg.RateLimit.Burst <= 0) {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive")
	}
	if cfg.RateLimit.MaxClients <= 0 {
		cfg.RateLimit.MaxClients = DefaultConfig().RateLimit.MaxClients
	}
	return nil
}

func (cfg *Config) BackendTimeout() (time.Duration, error) {
	if cfg.Backend.Timeout == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(cfg.Backend.Timeout)
	if err != nil {
		return 0, fmt.Errorf("backend.timeout: %w", err)
	}
	return timeout, nil
}

// Save writes the configuration as YAML.
func (cfg *Config) Save(path string) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0600)
}
