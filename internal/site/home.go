package site

// Feature is a landing-page feature card.
type Feature struct {
	Title       string
	Description string
}

// Step is one "how it works" step.
type Step struct {
	Number      int
	Title       string
	Description string
}

// HomePage is the content of the landing page.
type HomePage struct {
	Features []Feature
	Steps    []Step
	DocsURL  string
}

var Features = []Feature{
	{"Real-time Monitoring", "Live CPU & memory charts for every service. See resource usage trends at a glance."},
	{"Service Management", "Start, stop, and restart services with one click. Manage all your local dev processes from a single dashboard."},
	{"Smart Port Handling", "Auto-detects port conflicts and reassigns ports automatically. No more 'port already in use' headaches."},
	{"Auto-Restart", "Crashed services restart automatically with exponential backoff. Your dev environment stays running smoothly."},
	{"Unified Logs", "All service logs in one searchable, color-coded view. Filter by service, search by keyword, auto-scroll to latest."},
	{"Cross-Platform", "Works on Windows, macOS, and Linux. Available as .exe, .dmg, .AppImage, and .deb packages."},
}

var Steps = []Step{
	{1, "Install", "Download the DevDock binary for your operating system, or build from source with npm."},
	{2, "Add Services", "Configure your local dev services: name, command, working directory, port, and restart behavior."},
	{3, "Monitor", "Start all services and watch real-time CPU, memory, and status charts on your dashboard."},
}
