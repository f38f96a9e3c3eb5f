// Package toc derives in-page navigation from Markdown headings.
//
// Slug is the single source of anchor ids. The Markdown renderer and the
// table of contents both call it, so a heading's id attribute and the link
// pointing at it always agree.
package toc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Level is the depth of a navigable heading. Only H2 and H3 are navigable;
// level-1 headings are page titles.
type Level int

const (
	H2 Level = 2
	H3 Level = 3
)

// ParseLevel reports whether n is a navigable heading level.
func ParseLevel(n int) (Level, bool) {
	switch Level(n) {
	case H2, H3:
		return Level(n), true
	}
	return 0, false
}

// Heading is one entry of a page's table of contents.
type Heading struct {
	ID    string
	Text  string
	Level Level
}

// Anchor returns the fragment link for the heading.
func (h Heading) Anchor() string {
	return "#" + h.ID
}

var headingRe = regexp.MustCompile(`^(#{2,3})\s+(.+)`)

// Extract scans content line by line and returns its level-2 and level-3
// headings in order. Lines inside code fences are not special-cased.
func Extract(content string) []Heading {
	var headings []Heading
	for _, line := range strings.Split(content, "\n") {
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		level, _ := ParseLevel(len(m[1]))
		headings = append(headings, Heading{ID: Slug(text), Text: text, Level: level})
	}
	return headings
}

// Slug lower-cases text, drops everything except ASCII letters, digits,
// '_', '-' and whitespace, then turns each whitespace run into one '-'.
func Slug(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case isWordRune(r) || r == '-':
			if pendingSpace {
				b.WriteByte('-')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	if pendingSpace {
		b.WriteByte('-')
	}
	return b.String()
}

func isWordRune(r rune) bool {
	if r >= utf8.RuneSelf {
		return false
	}
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// Duplicates returns ids shared by more than one heading, in order of first
// appearance. Browsers resolve such anchors to the first match.
func Duplicates(headings []Heading) []string {
	counts := make(map[string]int, len(headings))
	var dups []string
	for _, h := range headings {
		counts[h.ID]++
		if counts[h.ID] == 2 {
			dups = append(dups, h.ID)
		}
	}
	return dups
}
