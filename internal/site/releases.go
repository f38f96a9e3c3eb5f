package site

import (
	"fmt"
	"html/template"

	"github.com/justtnz/devdock-site/internal/releases"
)

// AssetView is a release asset as listed on the releases page.
type AssetView struct {
	Name      string
	URL       string
	Size      string
	Downloads string // empty when the count is zero
}

// ReleaseView is one entry of the release history.
type ReleaseView struct {
	Name       string
	Tag        string
	URL        string
	Prerelease bool
	Date       string
	Body       template.HTML
	Assets     []AssetView
}

// ReleasesPage is the content of /releases. An empty Releases with Failed
// unset is the "Coming Soon" state.
type ReleasesPage struct {
	Releases []ReleaseView
	Failed   bool
	AllURL   string
}

// PlatformView is one cell of the all-platforms grid.
type PlatformView struct {
	Label   string
	URL     string
	Size    string
	Primary bool
	Steps   []string
}

// DownloadPage is the content of /download.
type DownloadPage struct {
	Version   string // empty renders "Latest Release"
	Primary   PlatformView
	Platforms []PlatformView
	Deb       *AssetView
	RepoURL   string
	Steps     []string
}

func (s *Site) releaseView(r releases.Release) (ReleaseView, error) {
	body, err := s.md.Render(r.Body)
	if err != nil {
		return ReleaseView{}, fmt.Errorf("rendering notes for %s: %w", r.TagName, err)
	}
	rv := ReleaseView{
		Name:       r.DisplayName(),
		Tag:        r.TagName,
		URL:        r.HTMLURL,
		Prerelease: r.Prerelease,
		Date:       releases.FormatDate(r.PublishedAt),
		Body:       body,
	}
	for _, a := range r.Assets {
		av := AssetView{Name: a.Name, URL: a.DownloadURL, Size: releases.FormatBytes(a.Size)}
		if a.DownloadCount > 0 {
			av.Downloads = releases.FormatCount(a.DownloadCount)
		}
		rv.Assets = append(rv.Assets, av)
	}
	return rv, nil
}

func (s *Site) downloadPage(latest *releases.Release, primary releases.Platform) DownloadPage {
	dp := DownloadPage{RepoURL: s.meta.RepoURL, Steps: primary.InstallSteps()}
	if latest != nil {
		dp.Version = latest.TagName
		if a, ok := latest.AssetWithSuffix(".deb"); ok {
			dp.Deb = &AssetView{Name: a.Name, URL: a.DownloadURL, Size: releases.FormatBytes(a.Size)}
		}
	}
	for _, p := range releases.Platforms {
		d := releases.DownloadFor(latest, p, s.meta.ReleasesURL)
		pv := PlatformView{
			Label:   p.Label(),
			URL:     d.URL,
			Size:    d.Size,
			Primary: p == primary,
			Steps:   p.InstallSteps(),
		}
		if pv.Primary {
			dp.Primary = pv
		}
		dp.Platforms = append(dp.Platforms, pv)
	}
	return dp
}
