// Package site composes the HTML pages of the DevDock website from the
// documentation catalog and the release feed.
package site

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"

	"github.com/justtnz/devdock-site/internal/docs"
	"github.com/justtnz/devdock-site/internal/markdown"
	"github.com/justtnz/devdock-site/internal/releases"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "doc", "notfound", "releases", "download"}

// ReleaseSource is the subset of *releases.Client the pages read.
type ReleaseSource interface {
	List(ctx context.Context) ([]releases.Release, error)
	Latest(ctx context.Context) (*releases.Release, error)
}

// Meta is the site-wide text and links shown in every page's chrome.
type Meta struct {
	Name            string
	Tagline         string
	BaseURL         string
	RepoURL         string
	ReleasesURL     string // fallback for download buttons
	EditURL         string
	DefaultPlatform releases.Platform
}

// Site renders pages. It holds no per-request state and is safe for
// concurrent use.
type Site struct {
	meta     Meta
	catalog  *docs.Catalog
	md       *markdown.Renderer
	releases ReleaseSource
	log      *slog.Logger
	pages    map[string]*template.Template
}

// New parses the embedded templates. rs may be nil, in which case release
// data is reported as unavailable.
func New(meta Meta, cat *docs.Catalog, rs ReleaseSource, log *slog.Logger) (*Site, error) {
	if cat == nil {
		return nil, fmt.Errorf("site: catalog is required")
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if meta.DefaultPlatform == "" {
		meta.DefaultPlatform = releases.Windows
	}
	s := &Site{
		meta:     meta,
		catalog:  cat,
		md:       markdown.New(),
		releases: rs,
		log:      log,
		pages:    make(map[string]*template.Template, len(pageNames)),
	}
	for _, name := range pageNames {
		t, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("site: parsing %s template: %w", name, err)
		}
		s.pages[name] = t
	}
	return s, nil
}

// Catalog returns the catalog the site renders.
func (s *Site) Catalog() *docs.Catalog { return s.catalog }

// Meta returns the site metadata.
func (s *Site) Meta() Meta { return s.meta }

// execute renders into a buffer first so a template error never leaves a
// half-written page on w.
func (s *Site) execute(w io.Writer, name string, data PageData) error {
	var buf bytes.Buffer
	if err := s.pages[name].Execute(&buf, data); err != nil {
		return fmt.Errorf("site: rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (s *Site) page(title, path string, content any) PageData {
	return PageData{
		Title:   title,
		Meta:    s.meta,
		Path:    path,
		Nav:     navLinks(path),
		Content: content,
	}
}

// RenderHome writes the landing page.
func (s *Site) RenderHome(w io.Writer) error {
	first := "/docs"
	if e, ok := s.catalog.First(); ok {
		first = e.Path()
	}
	return s.execute(w, "home", s.page(s.meta.Name, "/", HomePage{
		Features: Features,
		Steps:    Steps,
		DocsURL:  first,
	}))
}

// RenderDoc writes one documentation page. An unknown pair returns an error
// wrapping docs.ErrNotFound and writes nothing.
func (s *Site) RenderDoc(w io.Writer, sectionID, itemID string) error {
	dp, err := s.docPage(sectionID, itemID)
	if err != nil {
		return err
	}
	pd := s.page(dp.Title+" - "+s.meta.Name+" Docs", docs.Path(sectionID, itemID), dp)
	pd.Sidebar = Sidebar(s.catalog, sectionID, itemID)
	return s.execute(w, "doc", pd)
}

// RenderNotFound writes the 404 page.
func (s *Site) RenderNotFound(w io.Writer) error {
	pd := s.page("Page not found - "+s.meta.Name, "", nil)
	pd.Sidebar = Sidebar(s.catalog, "", "")
	return s.execute(w, "notfound", pd)
}

// RenderReleases writes the release history. Fetch failures degrade to the
// "Unable to load releases" state rather than an error.
func (s *Site) RenderReleases(ctx context.Context, w io.Writer) error {
	rp := ReleasesPage{AllURL: s.meta.RepoURL + "/releases"}
	if s.releases == nil {
		rp.Failed = true
	} else if list, err := s.releases.List(ctx); err != nil {
		s.log.Warn("release list unavailable", "err", err)
		rp.Failed = true
	} else {
		for _, r := range list {
			rv, err := s.releaseView(r)
			if err != nil {
				return err
			}
			rp.Releases = append(rp.Releases, rv)
		}
	}
	return s.execute(w, "releases", s.page("Releases - "+s.meta.Name, "/releases", rp))
}

// RenderDownload writes the download page with p as the primary platform.
func (s *Site) RenderDownload(ctx context.Context, w io.Writer, p releases.Platform) error {
	if _, ok := releases.ParsePlatform(string(p)); !ok {
		p = s.meta.DefaultPlatform
	}
	var latest *releases.Release
	if s.releases != nil {
		r, err := s.releases.Latest(ctx)
		switch {
		case err == nil:
			latest = r
		case errors.Is(err, releases.ErrNoReleases):
			s.log.Debug("no published release yet")
		default:
			s.log.Warn("latest release unavailable", "err", err)
		}
	}
	dp := s.downloadPage(latest, p)
	return s.execute(w, "download", s.page("Download - "+s.meta.Name, "/download", dp))
}
