// Package releases reads published DevDock releases from the GitHub REST API.
package releases

import (
	"strings"
	"time"
)

// Asset is a downloadable file attached to a release.
type Asset struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	DownloadURL   string `json:"browser_download_url"`
	DownloadCount int64  `json:"download_count"`
}

// Release mirrors the subset of the GitHub release object the site shows.
type Release struct {
	ID          int64     `json:"id"`
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
	Prerelease  bool      `json:"prerelease"`
	Assets      []Asset   `json:"assets"`
}

// DisplayName falls back to the tag when a release has no title.
func (r Release) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.TagName
}

// AssetWithSuffix returns the first asset whose name ends with suffix,
// ignoring case.
func (r Release) AssetWithSuffix(suffix string) (Asset, bool) {
	suffix = strings.ToLower(suffix)
	for _, a := range r.Assets {
		if strings.HasSuffix(strings.ToLower(a.Name), suffix) {
			return a, true
		}
	}
	return Asset{}, false
}
