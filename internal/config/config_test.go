package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_MissingOptional(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("site.yaml", false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "DevDock" || cfg.GitHub.Repo != "JUSTTNZ/DevDock" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load("nope.yaml", true); err == nil {
		t.Fatal("expected error for missing required config")
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := writeFile(t, dir, "site.yaml", `
name: DevDock Preview
listen: 0.0.0.0:9000
metrics: false
github:
  repo: someone/fork
  cache-ttl: 30s
`)
	cfg, err := Load(p, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "DevDock Preview" || cfg.Listen != "0.0.0.0:9000" {
		t.Errorf("overlay failed: %+v", cfg)
	}
	if cfg.MetricsEnabled() {
		t.Error("metrics should be disabled")
	}
	if cfg.GitHub.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", cfg.GitHub.CacheTTL)
	}
	// untouched keys keep their defaults
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" || cfg.GitHub.Timeout != 10*time.Second {
		t.Errorf("defaults lost: %+v", cfg.GitHub)
	}
	if cfg.ReleasesURL() != "https://github.com/someone/fork/releases/latest" {
		t.Errorf("ReleasesURL = %q", cfg.ReleasesURL())
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := writeFile(t, dir, "site.yaml", "name: [unterminated\n")
	_, err := Load(p, true)
	if err == nil || !strings.Contains(err.Error(), "config: parsing") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := writeFile(t, dir, "site.yaml", "log-level: loud\n")
	if _, err := Load(p, true); err == nil || !strings.Contains(err.Error(), "log-level") {
		t.Fatalf("expected log-level error, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEVDOCK_SITE_LISTEN", "127.0.0.1:7777")
	t.Setenv("DEVDOCK_SITE_LOG_LEVEL", "debug")
	cfg, err := Load("site.yaml", false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != "127.0.0.1:7777" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v", cfg.SlogLevel())
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "DEVDOCK_TEST_TOKEN=from-dotenv\n")
	t.Setenv("DEVDOCK_TEST_TOKEN", "")
	os.Unsetenv("DEVDOCK_TEST_TOKEN")

	cfg, err := Load("site.yaml", false)
	if err != nil {
		t.Fatal(err)
	}
	cfg.GitHub.TokenEnv = "DEVDOCK_TEST_TOKEN"
	if got := cfg.Token(); got != "from-dotenv" {
		t.Fatalf("Token = %q, want from-dotenv", got)
	}
}

func TestToken_Empty(t *testing.T) {
	cfg := Default()
	cfg.GitHub.TokenEnv = ""
	if cfg.Token() != "" {
		t.Fatal("expected empty token")
	}
}
