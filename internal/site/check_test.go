package site

import (
	"strings"
	"testing"

	"github.com/justtnz/devdock-site/internal/docs"
)

func TestCheck_BuiltinCatalogIsClean(t *testing.T) {
	s := newTestSite(t, nil)
	findings, err := s.Check()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range findings {
		t.Errorf("unexpected finding: %s", f)
	}
}

func TestCheck_Findings(t *testing.T) {
	cat, err := docs.New([]docs.Section{{
		ID: "s", Title: "S", Items: []docs.Item{
			{ID: "plain", Title: "Plain", Content: "just text\n"},
			{ID: "dup", Title: "Dup", Content: "## Setup\n\n## Setup\n"},
			{ID: "fence", Title: "Fence", Content: "## Real\n\n```\n## Fake\n```\n"},
			{ID: "symbols", Title: "Symbols", Content: "## Intro\n\n### ???\n"},
		},
	}})
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(testMeta, cat, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	findings, err := s.Check()
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, f := range findings {
		got = append(got, f.String())
	}
	joined := strings.Join(got, "\n")
	for _, want := range []string{
		"/docs/s/plain: no level-2 or level-3 headings",
		"/docs/s/dup: duplicate anchor #setup",
		`/docs/s/fence: TOC entry "Fake" links to #fake`,
		`/docs/s/symbols: heading "???" has no letters or digits`,
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing finding %q in:\n%s", want, joined)
		}
	}
	if len(findings) != 4 {
		t.Errorf("got %d findings, want 4:\n%s", len(findings), joined)
	}
}
