package site

import (
	"fmt"
	"strings"

	"github.com/justtnz/devdock-site/internal/toc"
)

// Finding is one problem reported by Check.
type Finding struct {
	Path    string
	Message string
}

func (f Finding) String() string {
	return f.Path + ": " + f.Message
}

// Check inspects every page for navigation problems: duplicate heading
// anchors, pages without an "On this page" block, and TOC entries whose
// anchor the rendered HTML does not carry (for example a "## " line inside a
// code fence).
func (s *Site) Check() ([]Finding, error) {
	var out []Finding
	for _, e := range s.catalog.Flatten() {
		path := e.Path()
		hs := toc.Extract(e.Item.Content)
		if len(hs) == 0 {
			out = append(out, Finding{path, "no level-2 or level-3 headings; the page has no table of contents"})
			continue
		}
		for _, id := range toc.Duplicates(hs) {
			out = append(out, Finding{path, fmt.Sprintf("duplicate anchor #%s; only the first heading is reachable", id)})
		}
		html, err := s.md.Render(e.Item.Content)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", path, err)
		}
		for _, h := range hs {
			if h.ID == "" {
				out = append(out, Finding{path, fmt.Sprintf("heading %q has no letters or digits to build an anchor from", h.Text)})
				continue
			}
			if !strings.Contains(string(html), `id="`+h.ID+`"`) {
				out = append(out, Finding{path, fmt.Sprintf("TOC entry %q links to #%s but no rendered heading has that id", h.Text, h.ID)})
			}
		}
	}
	return out, nil
}
