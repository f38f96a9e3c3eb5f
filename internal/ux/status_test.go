package ux

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/justtnz/devdock-site/internal/docs"
	"github.com/justtnz/devdock-site/internal/releases"
	"github.com/justtnz/devdock-site/internal/toc"
)

func init() {
	DisableColor()
}

func TestRenderCatalog(t *testing.T) {
	cat, err := docs.Default()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	RenderCatalog(&buf, cat)
	out := buf.String()
	for _, want := range []string{"Getting Started (getting-started)", "/docs/getting-started/installation", "/docs/development/contributing"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "14  ") {
		t.Errorf("expected positions up to 14:\n%s", out)
	}
}

func TestRenderItem_TOCOnly(t *testing.T) {
	e := docs.Entry{SectionID: "s", SectionTitle: "Setup", Item: docs.Item{
		ID: "i", Title: "Install", Content: "## Step One\nbody\n### Detail\n",
	}}
	next := &docs.Entry{SectionID: "s", SectionTitle: "Setup", Item: docs.Item{ID: "j", Title: "Run"}}
	var buf bytes.Buffer
	RenderItem(&buf, e, nil, next, true)
	out := buf.String()
	if !strings.Contains(out, "  Step One #step-one") || !strings.Contains(out, "    Detail #detail") {
		t.Errorf("toc not rendered:\n%s", out)
	}
	if strings.Contains(out, "body") {
		t.Errorf("content printed in toc-only mode:\n%s", out)
	}
	if strings.Contains(out, "Previous") || !strings.Contains(out, "Next → Run (/docs/s/j)") {
		t.Errorf("prev/next wrong:\n%s", out)
	}
}

func TestRenderTOC_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderTOC(&buf, []toc.Heading(nil))
	if !strings.Contains(buf.String(), "no headings") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRenderReleases(t *testing.T) {
	list := []releases.Release{
		{TagName: "v0.2.0", Prerelease: true, PublishedAt: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			Assets: []releases.Asset{{Name: "DevDock.exe", Size: 1536, DownloadCount: 1234}, {Name: "DevDock.dmg", Size: 10}}},
		{TagName: "v0.1.0", Name: "First"},
	}
	var buf bytes.Buffer
	RenderReleases(&buf, list, 1)
	out := buf.String()
	for _, want := range []string{"v0.2.0", "[pre-release]", "Released March 4, 2025", "1.5 KB", "1,234 downloads"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "First") {
		t.Errorf("limit not applied:\n%s", out)
	}
	if strings.Count(out, "downloads") != 1 {
		t.Errorf("zero download counts should be hidden:\n%s", out)
	}
}

func TestRenderReleases_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderReleases(&buf, nil, 0)
	if !strings.Contains(buf.String(), "No releases") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("boom"))
	if buf.String() != "error: boom\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefghij", 8); got != "abcde..." {
		t.Fatalf("got %q", got)
	}
	if got := truncate("設定ファイル-windows-x64.zip", 10); got != "設定ファイル-..." || !utf8.ValidString(got) {
		t.Errorf("truncate multi-byte = %q", got)
	}
	if got := truncate("日本語", 3); got != "日本語" {
		t.Errorf("truncate short multi-byte = %q", got)
	}
	if got := truncate("abc", 8); got != "abc" {
		t.Fatalf("got %q", got)
	}
}
