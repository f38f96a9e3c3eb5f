package docs

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func TestIndexOf(t *testing.T) {
	c := smallCatalog(t)
	tests := []struct {
		section, item string
		want          int
	}{
		{"a", "x", 0},
		{"a", "y", 1},
		{"b", "z", 2},
		{"b", "y", -1},
		{"missing", "x", -1},
	}
	for _, tt := range tests {
		if got := c.IndexOf(tt.section, tt.item); got != tt.want {
			t.Errorf("IndexOf(%q, %q) = %d, want %d", tt.section, tt.item, got, tt.want)
		}
	}
}

func TestPreviousNext_LastEntry(t *testing.T) {
	c := smallCatalog(t)
	pos := c.IndexOf("b", "z")
	if pos != 2 {
		t.Fatalf("IndexOf(b, z) = %d, want 2", pos)
	}
	prev, ok := c.Previous(pos)
	if !ok || prev.SectionID != "a" || prev.Item.ID != "y" {
		t.Errorf("Previous(%d) = %+v, %v; want a/y", pos, prev, ok)
	}
	if next, ok := c.Next(pos); ok {
		t.Errorf("Next(%d) = %+v, want absence", pos, next)
	}
}

func TestPreviousNext_Boundaries(t *testing.T) {
	c := smallCatalog(t)
	if _, ok := c.Previous(0); ok {
		t.Error("Previous(0) should be absent")
	}
	if _, ok := c.Previous(-1); ok {
		t.Error("Previous(-1) should be absent")
	}
	if _, ok := c.Next(c.Len() - 1); ok {
		t.Error("Next(last) should be absent")
	}
	if _, ok := c.Next(-5); ok {
		t.Error("Next(-5) should be absent")
	}
	if _, ok := c.Previous(c.Len() + 3); ok {
		t.Error("Previous beyond the end should be absent")
	}
	next, ok := c.Next(0)
	if !ok || next.Item.ID != "y" {
		t.Errorf("Next(0) = %+v, %v; want a/y", next, ok)
	}
}

func TestNeighbors(t *testing.T) {
	c := smallCatalog(t)

	prev, next := c.Neighbors("a", "x")
	if prev != nil {
		t.Errorf("first page prev = %+v, want nil", prev)
	}
	if next == nil || next.Path() != "/docs/a/y" {
		t.Errorf("first page next = %+v, want /docs/a/y", next)
	}

	prev, next = c.Neighbors("a", "y")
	if prev == nil || prev.Path() != "/docs/a/x" {
		t.Errorf("prev = %+v, want /docs/a/x", prev)
	}
	if next == nil || next.Path() != "/docs/b/z" {
		t.Errorf("next crosses sections: got %+v, want /docs/b/z", next)
	}

	prev, next = c.Neighbors("a", "missing")
	if prev != nil || next != nil {
		t.Errorf("unknown page should have no neighbors, got %+v %+v", prev, next)
	}
}

func genCatalog(t *rapid.T) *Catalog {
	nSections := rapid.IntRange(1, 5).Draw(t, "sections")
	sections := make([]Section, nSections)
	for i := range sections {
		nItems := rapid.IntRange(0, 4).Draw(t, fmt.Sprintf("items-%d", i))
		items := make([]Item, nItems)
		for j := range items {
			items[j] = Item{ID: fmt.Sprintf("i%d", j), Title: "T"}
		}
		sections[i] = Section{ID: fmt.Sprintf("s%d", i), Title: "S", Items: items}
	}
	c, err := New(sections)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestSequence_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := genCatalog(t)
		entries := c.Flatten()
		if len(entries) < 3 {
			return
		}
		i := rapid.IntRange(1, len(entries)-2).Draw(t, "pos")

		prev, ok := c.Previous(i)
		if !ok {
			t.Fatalf("Previous(%d) absent at interior position", i)
		}
		back, ok := c.Next(c.IndexOf(prev.SectionID, prev.Item.ID))
		if !ok || back != entries[i] {
			t.Fatalf("Next(Previous(%d)) = %+v, want %+v", i, back, entries[i])
		}
	})
}

func TestSequence_IndexOfMatchesFlatten(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := genCatalog(t)
		for i, e := range c.Flatten() {
			if got := c.IndexOf(e.SectionID, e.Item.ID); got != i {
				t.Fatalf("IndexOf(%s) = %d, want %d", e.Path(), got, i)
			}
		}
	})
}
