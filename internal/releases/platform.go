package releases

// Platform is a desktop OS DevDock ships installers for.
type Platform string

const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
)

// Platforms lists every platform in download-grid order.
var Platforms = []Platform{Windows, MacOS, Linux}

// ParsePlatform accepts "windows", "macos" or "linux".
func ParsePlatform(s string) (Platform, bool) {
	switch p := Platform(s); p {
	case Windows, MacOS, Linux:
		return p, true
	}
	return "", false
}

// Label is the display name.
func (p Platform) Label() string {
	switch p {
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	}
	return string(p)
}

// Extension is the installer suffix matched against asset names.
func (p Platform) Extension() string {
	switch p {
	case Windows:
		return ".exe"
	case MacOS:
		return ".dmg"
	case Linux:
		return ".appimage"
	}
	return ""
}

// InstallSteps returns the short installation guide for the platform.
func (p Platform) InstallSteps() []string {
	switch p {
	case Windows:
		return []string{
			"Download the .exe installer",
			"Run the installer and follow the setup wizard",
			"DevDock will be available in your Start menu",
		}
	case MacOS:
		return []string{
			"Download the .dmg file",
			"Open the .dmg and drag DevDock to your Applications folder",
			`Launch DevDock from Applications (you may need to right-click and select "Open" on first launch)`,
		}
	case Linux:
		return []string{
			"Download the .AppImage or .deb file",
			"For AppImage: chmod +x DevDock-*.AppImage && ./DevDock-*.AppImage",
			"For .deb: sudo dpkg -i devdock_*.deb",
		}
	}
	return nil
}

// Download is a resolved download button.
type Download struct {
	Platform Platform
	URL      string
	Size     string // empty when the asset is unknown
}

// DownloadFor picks the installer for p from latest. Without a matching
// asset it points at fallbackURL, normally the latest-release page.
func DownloadFor(latest *Release, p Platform, fallbackURL string) Download {
	d := Download{Platform: p, URL: fallbackURL}
	if latest == nil {
		return d
	}
	if a, ok := latest.AssetWithSuffix(p.Extension()); ok {
		d.URL = a.DownloadURL
		d.Size = FormatBytes(a.Size)
	}
	return d
}
