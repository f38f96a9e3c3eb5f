package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/justtnz/devdock-site/internal/docs"
	"github.com/justtnz/devdock-site/internal/toc"
)

// PageData is the view model handed to the shared layout.
type PageData struct {
	Title   string
	Meta    Meta
	Path    string
	Nav     []NavLink
	Sidebar []NavSection // docs pages only
	Content any
}

// NavLink is one link in the top bar or sidebar.
type NavLink struct {
	Title  string
	Href   string
	Active bool
}

// NavSection is a sidebar group. Every section is rendered expanded.
type NavSection struct {
	Title string
	Items []NavLink
}

// TOCEntry is one "On this page" link.
type TOCEntry struct {
	Text   string
	Href   string
	Indent bool
}

// PagerLink is a previous/next card.
type PagerLink struct {
	Title        string
	SectionTitle string
	Href         string
}

// DocPage is the content of a documentation page.
type DocPage struct {
	SectionTitle string
	Title        string
	HTML         template.HTML
	TOC          []TOCEntry
	Prev         *PagerLink
	Next         *PagerLink
	EditURL      string
}

var topNav = []NavLink{
	{Title: "Docs", Href: "/docs"},
	{Title: "Download", Href: "/download"},
	{Title: "Releases", Href: "/releases"},
}

func navLinks(path string) []NavLink {
	out := make([]NavLink, len(topNav))
	copy(out, topNav)
	for i := range out {
		out[i].Active = path == out[i].Href || strings.HasPrefix(path, out[i].Href+"/")
	}
	return out
}

// Sidebar lists every section with the given item marked active.
func Sidebar(cat *docs.Catalog, sectionID, itemID string) []NavSection {
	sections := cat.Sections()
	out := make([]NavSection, len(sections))
	for i, s := range sections {
		ns := NavSection{Title: s.Title, Items: make([]NavLink, len(s.Items))}
		for j, it := range s.Items {
			ns.Items[j] = NavLink{
				Title:  it.Title,
				Href:   docs.Path(s.ID, it.ID),
				Active: s.ID == sectionID && it.ID == itemID,
			}
		}
		out[i] = ns
	}
	return out
}

// TOC converts extracted headings to "On this page" entries. It returns nil
// when content has no navigable headings, and the page omits the block.
func TOC(content string) []TOCEntry {
	hs := toc.Extract(content)
	if len(hs) == 0 {
		return nil
	}
	out := make([]TOCEntry, len(hs))
	for i, h := range hs {
		out[i] = TOCEntry{Text: h.Text, Href: h.Anchor(), Indent: h.Level == toc.H3}
	}
	return out
}

func pager(e *docs.Entry) *PagerLink {
	if e == nil {
		return nil
	}
	return &PagerLink{Title: e.Item.Title, SectionTitle: e.SectionTitle, Href: e.Path()}
}

func (s *Site) docPage(sectionID, itemID string) (DocPage, error) {
	sec, ok := s.catalog.Section(sectionID)
	if !ok {
		return DocPage{}, fmt.Errorf("%s/%s: %w", sectionID, itemID, docs.ErrNotFound)
	}
	it, ok := s.catalog.Find(sectionID, itemID)
	if !ok {
		return DocPage{}, fmt.Errorf("%s/%s: %w", sectionID, itemID, docs.ErrNotFound)
	}
	html, err := s.md.Render(it.Content)
	if err != nil {
		return DocPage{}, fmt.Errorf("rendering %s/%s: %w", sectionID, itemID, err)
	}
	prev, next := s.catalog.Neighbors(sectionID, itemID)
	return DocPage{
		SectionTitle: sec.Title,
		Title:        it.Title,
		HTML:         html,
		TOC:          TOC(it.Content),
		Prev:         pager(prev),
		Next:         pager(next),
		EditURL:      s.meta.EditURL,
	}, nil
}
