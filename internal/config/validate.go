package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validPlatforms = map[string]bool{
	"windows": true,
	"macos":   true,
	"linux":   true,
}

var repoRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
var envNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("config: 'name' is required")
	}
	if cfg.Listen == "" {
		return fmt.Errorf("config: 'listen' is required")
	}
	if !strings.Contains(cfg.Listen, ":") {
		return fmt.Errorf("config: listen %q must be host:port", cfg.Listen)
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: base-url %q must be an absolute http(s) URL", cfg.BaseURL)
		}
		cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("config: unknown log-level %q (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.ExportWorkers < 0 {
		return fmt.Errorf("config: export-workers must be >= 0")
	}
	if cfg.ExportWorkers == 0 {
		cfg.ExportWorkers = 4
	}

	if cfg.DefaultPlatform == "" {
		cfg.DefaultPlatform = "windows"
	}
	if !validPlatforms[cfg.DefaultPlatform] {
		return fmt.Errorf("config: unknown default-platform %q (must be windows, macos, or linux)", cfg.DefaultPlatform)
	}

	g := &cfg.GitHub
	if g.Repo == "" {
		return fmt.Errorf("config: github: 'repo' is required")
	}
	if !repoRe.MatchString(g.Repo) {
		return fmt.Errorf("config: github: repo %q must be owner/name", g.Repo)
	}
	if g.APIURL == "" {
		g.APIURL = "https://api.github.com"
	}
	if u, err := url.Parse(g.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: github: api-url %q must be an absolute URL", g.APIURL)
	}
	if g.TokenEnv != "" && !envNameRe.MatchString(g.TokenEnv) {
		return fmt.Errorf("config: github: token-env %q is not a valid variable name", g.TokenEnv)
	}
	if g.Timeout < 0 {
		return fmt.Errorf("config: github: timeout must be >= 0")
	}
	if g.CacheTTL < 0 {
		return fmt.Errorf("config: github: cache-ttl must be >= 0")
	}
	if g.RequestsPerMinute < 0 {
		return fmt.Errorf("config: github: requests-per-minute must be >= 0")
	}

	return nil
}
