package markdown

import (
	"strings"
	"testing"

	"github.com/justtnz/devdock-site/internal/docs"
	"github.com/justtnz/devdock-site/internal/toc"
)

func TestRender_HeadingIDs(t *testing.T) {
	r := New()
	html, err := r.Render("# Title\n\n## Getting Started\n\ntext\n\n### Step One\n\n#### Deep\n")
	if err != nil {
		t.Fatal(err)
	}
	out := string(html)
	for _, want := range []string{
		`<h2 id="getting-started">Getting Started</h2>`,
		`<h3 id="step-one">Step One</h3>`,
		"<h1>Title</h1>",
		"<h4>Deep</h4>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_InlineCodeHeadingMatchesTOC(t *testing.T) {
	src := "## Using `npm run dev`\n"
	html, err := New().Render(src)
	if err != nil {
		t.Fatal(err)
	}
	hs := toc.Extract(src)
	if len(hs) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(hs))
	}
	if !strings.Contains(string(html), `id="`+hs[0].ID+`"`) {
		t.Errorf("rendered id does not match TOC id %q:\n%s", hs[0].ID, html)
	}
}

func TestRender_TablesAndCode(t *testing.T) {
	src := "| A | B |\n|---|---|\n| 1 | 2 |\n\n```bash\nnpm install\n```\n"
	html, err := New().Render(src)
	if err != nil {
		t.Fatal(err)
	}
	out := string(html)
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected a table:\n%s", out)
	}
	if !strings.Contains(out, `<code class="language-bash">`) {
		t.Errorf("expected a bash code block:\n%s", out)
	}
}

func TestRender_EscapesRawHTML(t *testing.T) {
	html, err := New().Render("hello <script>alert(1)</script>\n")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Errorf("raw HTML was passed through:\n%s", html)
	}
}

// Every anchor the TOC offers for the shipped docs must exist in the page.
func TestRender_BuiltinCatalogAnchorsResolve(t *testing.T) {
	c, err := docs.Default()
	if err != nil {
		t.Fatal(err)
	}
	r := New()
	for _, e := range c.Flatten() {
		html, err := r.Render(e.Item.Content)
		if err != nil {
			t.Fatalf("%s: %v", e.Path(), err)
		}
		for _, h := range toc.Extract(e.Item.Content) {
			if !strings.Contains(string(html), `id="`+h.ID+`"`) {
				t.Errorf("%s: heading %q has no element with id %q", e.Path(), h.Text, h.ID)
			}
		}
	}
}
