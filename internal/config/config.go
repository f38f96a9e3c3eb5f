package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "site.yaml"

type GitHub struct {
	Repo              string        `yaml:"repo"`
	APIURL            string        `yaml:"api-url"`
	TokenEnv          string        `yaml:"token-env"`
	Timeout           time.Duration `yaml:"timeout"`
	CacheTTL          time.Duration `yaml:"cache-ttl"`
	RequestsPerMinute int           `yaml:"requests-per-minute"`
}

type Config struct {
	Name            string `yaml:"name"`
	Tagline         string `yaml:"tagline"`
	BaseURL         string `yaml:"base-url"`
	Listen          string `yaml:"listen"`
	Catalog         string `yaml:"catalog"`
	LogLevel        string `yaml:"log-level"`
	Metrics         *bool  `yaml:"metrics"`
	ExportWorkers   int    `yaml:"export-workers"`
	DefaultPlatform string `yaml:"default-platform"`
	EditURL         string `yaml:"edit-url"`
	GitHub          GitHub `yaml:"github"`
}

// Default returns the configuration used when no site.yaml exists.
func Default() *Config {
	on := true
	return &Config{
		Name:            "DevDock",
		Tagline:         "Manage your local development services from one place",
		Listen:          "127.0.0.1:8080",
		LogLevel:        "info",
		Metrics:         &on,
		ExportWorkers:   4,
		DefaultPlatform: "windows",
		EditURL:         "https://github.com/JUSTTNZ/DevDock/edit/main/website/src/lib/docs-data.ts",
		GitHub: GitHub{
			Repo:              "JUSTTNZ/DevDock",
			APIURL:            "https://api.github.com",
			TokenEnv:          "GITHUB_TOKEN",
			Timeout:           10 * time.Second,
			CacheTTL:          5 * time.Minute,
			RequestsPerMinute: 30,
		},
	}
}

// Load overlays the YAML file at path on Default, applies .env and
// environment overrides, and validates the result. When required is false a
// missing file is not an error.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("config: %w", err)
	}

	// a missing .env is normal
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DEVDOCK_SITE_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("DEVDOCK_SITE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("DEVDOCK_SITE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// MetricsEnabled reports whether /metrics is served. Unset means enabled.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics == nil || *c.Metrics
}

// SlogLevel maps log-level to a slog.Level. Validate guarantees a known name.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Token reads the GitHub token from the configured environment variable.
func (c *Config) Token() string {
	if c.GitHub.TokenEnv == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(c.GitHub.TokenEnv))
}

// RepoURL is the repository's web page.
func (c *Config) RepoURL() string {
	return "https://github.com/" + c.GitHub.Repo
}

// ReleasesURL is the latest-release page used when no asset matches.
func (c *Config) ReleasesURL() string {
	return c.RepoURL() + "/releases/latest"
}
