package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/justtnz/devdock-site/internal/docs"
	"github.com/justtnz/devdock-site/internal/releases"
	"github.com/justtnz/devdock-site/internal/toc"
)

// RenderCatalog prints every section and its items in reading order.
func RenderCatalog(w io.Writer, cat *docs.Catalog) {
	pos := 0
	for _, s := range cat.Sections() {
		fmt.Fprintf(w, "%s%s%s %s(%s)%s\n", Bold, s.Title, Reset, Dim, s.ID, Reset)
		for _, it := range s.Items {
			pos++
			fmt.Fprintf(w, "  %s%2d%s  %-28s %s%s%s\n",
				Dim, pos, Reset, it.Title, Cyan, docs.Path(s.ID, it.ID), Reset)
		}
	}
}

// RenderSection prints one section's items.
func RenderSection(w io.Writer, s docs.Section) {
	fmt.Fprintf(w, "%s%s%s\n", Bold, s.Title, Reset)
	for _, it := range s.Items {
		fmt.Fprintf(w, "  %-28s %s%s%s\n", it.Title, Cyan, docs.Path(s.ID, it.ID), Reset)
	}
}

// RenderItem prints an item's raw content, or only its headings when
// tocOnly is set, followed by the previous/next links.
func RenderItem(w io.Writer, e docs.Entry, prev, next *docs.Entry, tocOnly bool) {
	fmt.Fprintf(w, "%s%s%s › %s%s%s\n\n", Dim, e.SectionTitle, Reset, Bold, e.Item.Title, Reset)
	if tocOnly {
		RenderTOC(w, toc.Extract(e.Item.Content))
	} else {
		fmt.Fprintln(w, strings.TrimRight(e.Item.Content, "\n"))
	}
	fmt.Fprintln(w)
	if prev != nil {
		fmt.Fprintf(w, "%s← Previous:%s %s %s(%s)%s\n", Yellow, Reset, prev.Item.Title, Dim, prev.Path(), Reset)
	}
	if next != nil {
		fmt.Fprintf(w, "%sNext →%s %s %s(%s)%s\n", Yellow, Reset, next.Item.Title, Dim, next.Path(), Reset)
	}
}

// RenderTOC prints headings with level-3 entries indented.
func RenderTOC(w io.Writer, hs []toc.Heading) {
	if len(hs) == 0 {
		fmt.Fprintf(w, "%s(no headings)%s\n", Dim, Reset)
		return
	}
	for _, h := range hs {
		indent := "  "
		if h.Level == toc.H3 {
			indent = "    "
		}
		fmt.Fprintf(w, "%s%s %s%s%s\n", indent, h.Text, Dim, h.Anchor(), Reset)
	}
}

// RenderReleases prints up to limit releases; limit <= 0 prints all.
func RenderReleases(w io.Writer, list []releases.Release, limit int) {
	if len(list) == 0 {
		fmt.Fprintf(w, "%sNo releases published yet.%s\n", Dim, Reset)
		return
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	for _, r := range list {
		badge := ""
		if r.Prerelease {
			badge = fmt.Sprintf(" %s[pre-release]%s", Yellow, Reset)
		}
		fmt.Fprintf(w, "%s%s%s %s%s%s%s", Bold, r.DisplayName(), Reset, Cyan, r.TagName, Reset, badge)
		if d := releases.FormatDate(r.PublishedAt); d != "" {
			fmt.Fprintf(w, "  %sReleased %s%s", Dim, d, Reset)
		}
		fmt.Fprintln(w)
		for _, a := range r.Assets {
			line := fmt.Sprintf("    %-40s %8s", truncate(a.Name, 40), releases.FormatBytes(a.Size))
			if a.DownloadCount > 0 {
				line += fmt.Sprintf("  %s downloads", releases.FormatCount(a.DownloadCount))
			}
			fmt.Fprintln(w, line)
		}
	}
}
