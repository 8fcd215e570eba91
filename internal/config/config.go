package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds campusctl configuration.
// Environment variables are parsed from the CAMPUS_ prefix.
type Config struct {
	// Root of the backend REST API; every endpoint path is appended to it.
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Path handed to the session-expired notifier on 401.
	LoginPath string `envconfig:"LOGIN_PATH" default:"/login"`

	// Directory of the persistent session store; empty derives $HOME/.campusctl/session.
	SessionDir string `envconfig:"SESSION_DIR" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// New parses CAMPUS_* environment variables and derives defaults.
// Example: CAMPUS_API_BASE_URL, CAMPUS_HTTP_TIMEOUT.
func New() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads the environment without deriving defaults, so callers can
// apply overrides (CLI flags) before ResolveDefaults.
func Parse() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CAMPUS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// ResolveDefaults validates the parsed values and fills derived fields.
func (c *Config) ResolveDefaults() error {
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must start with http:// or https://: %q", c.APIBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0")
	}
	if c.LoginPath == "" {
		c.LoginPath = "/login"
	}
	if c.SessionDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("derive SESSION_DIR: %w", err)
		}
		c.SessionDir = filepath.Join(home, ".campusctl", "session")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level for LogLevel; Debug forces debug.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// ParseLevel maps a case-insensitive level name to zerolog.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unsupported LOG_LEVEL: %s", s)
	}
}
