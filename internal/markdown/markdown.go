// Package markdown renders documentation and release notes to HTML.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/justtnz/devdock-site/internal/toc"
)

// Renderer converts Markdown to HTML. Raw HTML in the source is escaped, so
// output is safe to embed in pages even for release notes fetched remotely.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a renderer with GitHub-flavored tables, strikethrough, task
// lists and autolinks. Level-2 and level-3 headings get id attributes from
// toc.Slug.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(util.Prioritized(headingIDs{}, 100)),
			),
		),
	}
}

// Render converts src to HTML.
func (r *Renderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// headingIDs sets id attributes on navigable headings.
type headingIDs struct{}

func (headingIDs) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	src := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if _, ok := toc.ParseLevel(h.Level); ok {
			h.SetAttributeString("id", []byte(toc.Slug(plainText(h, src))))
		}
		return ast.WalkSkipChildren, nil
	})
}

// plainText concatenates the literal text under n, dropping inline markup.
func plainText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
