package docs

import (
	"embed"
	"fmt"
	"path"
)

//go:embed content
var contentFS embed.FS

// builtin is the outline of the shipped documentation. Page bodies live in
// content/<section>/<item>.md.
var builtin = []Section{
	{
		ID:    "getting-started",
		Title: "Getting Started",
		Items: []Item{
			{ID: "installation", Title: "Installation"},
			{ID: "system-requirements", Title: "System Requirements"},
			{ID: "quick-start", Title: "Quick Start"},
		},
	},
	{
		ID:    "configuration",
		Title: "Configuration",
		Items: []Item{
			{ID: "adding-services", Title: "Adding Services"},
			{ID: "service-settings", Title: "Service Settings"},
		},
	},
	{
		ID:    "features",
		Title: "Features",
		Items: []Item{
			{ID: "dashboard-overview", Title: "Dashboard Overview"},
			{ID: "service-management", Title: "Service Management"},
			{ID: "log-viewer", Title: "Log Viewer"},
			{ID: "settings-themes", Title: "Settings & Themes"},
		},
	},
	{
		ID:    "advanced",
		Title: "Advanced",
		Items: []Item{
			{ID: "port-conflict-resolution", Title: "Port Conflict Resolution"},
			{ID: "auto-restart-behavior", Title: "Auto-Restart Behavior"},
			{ID: "process-monitoring", Title: "Process Monitoring"},
		},
	},
	{
		ID:    "development",
		Title: "Development",
		Items: []Item{
			{ID: "building-from-source", Title: "Building from Source"},
			{ID: "contributing", Title: "Contributing"},
		},
	},
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	sections := make([]Section, len(builtin))
	for i, s := range builtin {
		items := make([]Item, len(s.Items))
		for j, it := range s.Items {
			data, err := contentFS.ReadFile(path.Join("content", s.ID, it.ID+".md"))
			if err != nil {
				return nil, fmt.Errorf("built-in page %s/%s: %w", s.ID, it.ID, err)
			}
			it.Content = string(data)
			items[j] = it
		}
		sections[i] = Section{ID: s.ID, Title: s.Title, Items: items}
	}
	return New(sections)
}
