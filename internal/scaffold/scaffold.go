package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/justtnz/devdock-site/internal/ux"
)

var configTemplate = `name: DevDock
tagline: Manage your local development services from one place
listen: 127.0.0.1:8080
# base-url: https://devdock.example.com
catalog: docs/catalog.yaml
log-level: info
metrics: true
export-workers: 4
default-platform: windows
edit-url: https://github.com/JUSTTNZ/DevDock/edit/main/docs/catalog.yaml

github:
  repo: JUSTTNZ/DevDock
  token-env: GITHUB_TOKEN
  timeout: 10s
  cache-ttl: 5m
  requests-per-minute: 30
`

var catalogTemplate = `sections:
  - id: getting-started
    title: Getting Started
    items:
      - id: introduction
        title: Introduction
        file: getting-started/introduction.md
      - id: next-steps
        title: Next Steps
        content: |
          ## Where to go next

          Add more items to docs/catalog.yaml, then run devdock-site check.
`

var pageTemplate = `## What is DevDock?

DevDock runs and monitors your local development services from one dashboard.

## Installing

Download the installer for your platform from the download page.

### From source

Clone the repository and run npm install.
`

// Init writes a starter site.yaml and documentation catalog into targetDir
// and prints what it created to w.
func Init(targetDir string, w io.Writer) error {
	configPath := filepath.Join(targetDir, "site.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("site.yaml already exists in %s", targetDir)
	}
	docsDir := filepath.Join(targetDir, "docs")
	if _, err := os.Stat(filepath.Join(docsDir, "catalog.yaml")); err == nil {
		return fmt.Errorf("docs/catalog.yaml already exists in %s", targetDir)
	}

	pageDir := filepath.Join(docsDir, "getting-started")
	if err := os.MkdirAll(pageDir, 0755); err != nil {
		return fmt.Errorf("creating docs/getting-started: %w", err)
	}

	files := []struct {
		path, content string
	}{
		{configPath, configTemplate},
		{filepath.Join(docsDir, "catalog.yaml"), catalogTemplate},
		{filepath.Join(pageDir, "introduction.md"), pageTemplate},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(f.path), err)
		}
	}

	fmt.Fprintf(w, "\n%s%s✓ Initialized devdock-site%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Fprintf(w, "  Created:\n")
	fmt.Fprintf(w, "    %ssite.yaml%s                              site configuration\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(w, "    %sdocs/catalog.yaml%s                      documentation outline\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(w, "    %sdocs/getting-started/introduction.md%s   first page\n\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(w, "  Next steps:\n")
	fmt.Fprintf(w, "    1. Edit %sdocs/catalog.yaml%s to outline your docs\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(w, "    2. Run %sdevdock-site check%s to validate anchors\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(w, "    3. Run %sdevdock-site serve%s to preview\n\n", ux.Cyan, ux.Reset)

	return nil
}
