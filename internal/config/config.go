// Package config loads the tool's configuration from a YAML file with
// environment variable overrides. Everything has a default so the tool runs
// with no config at all.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/adires/htma-shows/internal/scraper"
	"github.com/adires/htma-shows/internal/show"
)

// DefaultPath is where Load looks when no config path is given.
const DefaultPath = "configs/htma.yaml"

// Config holds the scraper and storage settings.
type Config struct {
	BaseURL        string            `yaml:"base_url"`
	Endpoints      map[string]string `yaml:"endpoints"` // category name → path override
	UserAgent      string            `yaml:"user_agent"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	DataDir        string            `yaml:"data_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:        scraper.DefaultBaseURL,
		Endpoints:      map[string]string{},
		UserAgent:      scraper.UserAgent,
		TimeoutSeconds: int(scraper.Timeout / time.Second),
		DataDir:        "~/.local/share/htma-shows",
	}
}

// Load reads the config file at path (DefaultPath when empty) and applies
// environment overrides. A missing file is not an error; a malformed one is.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.applyEnv()

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("timeout_seconds must be positive, got %d", cfg.TimeoutSeconds)
	}
	return cfg, nil
}

// applyEnv overrides file values with HTMA_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("HTMA_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("HTMA_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("HTMA_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("HTMA_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.TimeoutSeconds = secs
		}
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ScraperOptions translates the config into scraper options. Endpoint
// entries with an unknown category name are rejected.
func (c *Config) ScraperOptions() ([]scraper.Option, error) {
	opts := []scraper.Option{
		scraper.WithBaseURL(c.BaseURL),
		scraper.WithUserAgent(c.UserAgent),
		scraper.WithTimeout(c.Timeout()),
	}
	for name, path := range c.Endpoints {
		cat, err := show.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("endpoints: %w", err)
		}
		opts = append(opts, scraper.WithCategoryPath(cat, path))
	}
	return opts, nil
}
