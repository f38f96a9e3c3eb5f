package docs

import (
	"fmt"
	"strings"
)

// Item holds a single documentation page.
type Item struct {
	ID      string // URL segment, unique within its section
	Title   string // human-readable title
	Content string // Markdown body
}

// Section groups items under a sidebar heading.
type Section struct {
	ID    string
	Title string
	Items []Item
}

// Entry is one position in the flattened catalog.
type Entry struct {
	SectionID    string
	SectionTitle string
	Item         Item
}

// Path returns the page route for the entry.
func (e Entry) Path() string {
	return Path(e.SectionID, e.Item.ID)
}

// Path returns the page route for a section/item pair.
func Path(sectionID, itemID string) string {
	return "/docs/" + sectionID + "/" + itemID
}

// Catalog is the ordered, read-only documentation tree. It is built once
// and shared between readers without locking.
type Catalog struct {
	sections []Section
	entries  []Entry
}

// New validates sections and returns a catalog holding a private copy of them.
func New(sections []Section) (*Catalog, error) {
	c := &Catalog{sections: make([]Section, 0, len(sections))}
	seenSections := make(map[string]bool, len(sections))
	for i, s := range sections {
		if err := checkID(s.ID); err != nil {
			return nil, fmt.Errorf("%w: section %d: %v", ErrInvalidCatalog, i+1, err)
		}
		if s.Title == "" {
			return nil, fmt.Errorf("%w: section %q: 'title' is required", ErrInvalidCatalog, s.ID)
		}
		if seenSections[s.ID] {
			return nil, fmt.Errorf("%w: duplicate section id %q", ErrInvalidCatalog, s.ID)
		}
		seenSections[s.ID] = true

		items := make([]Item, len(s.Items))
		seenItems := make(map[string]bool, len(s.Items))
		for j, it := range s.Items {
			if err := checkID(it.ID); err != nil {
				return nil, fmt.Errorf("%w: section %q: item %d: %v", ErrInvalidCatalog, s.ID, j+1, err)
			}
			if it.Title == "" {
				return nil, fmt.Errorf("%w: item %s/%s: 'title' is required", ErrInvalidCatalog, s.ID, it.ID)
			}
			if seenItems[it.ID] {
				return nil, fmt.Errorf("%w: section %q: duplicate item id %q", ErrInvalidCatalog, s.ID, it.ID)
			}
			seenItems[it.ID] = true
			items[j] = it
			c.entries = append(c.entries, Entry{SectionID: s.ID, SectionTitle: s.Title, Item: it})
		}
		c.sections = append(c.sections, Section{ID: s.ID, Title: s.Title, Items: items})
	}
	return c, nil
}

func checkID(id string) error {
	if id == "" {
		return fmt.Errorf("'id' is required")
	}
	if strings.ContainsAny(id, "/?# \t\n") {
		return fmt.Errorf("id %q must not contain '/', '?', '#' or whitespace", id)
	}
	if id == "." || id == ".." {
		return fmt.Errorf("id %q is reserved", id)
	}
	return nil
}

// Sections returns every section in display order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		out[i] = Section{ID: s.ID, Title: s.Title, Items: append([]Item(nil), s.Items...)}
	}
	return out
}

// Section looks up a section by id.
func (c *Catalog) Section(id string) (Section, bool) {
	for _, s := range c.sections {
		if s.ID == id {
			return Section{ID: s.ID, Title: s.Title, Items: append([]Item(nil), s.Items...)}, true
		}
	}
	return Section{}, false
}

// Find returns the item addressed by (sectionID, itemID). The boolean is
// false when either identifier does not match.
func (c *Catalog) Find(sectionID, itemID string) (Item, bool) {
	for _, s := range c.sections {
		if s.ID != sectionID {
			continue
		}
		for _, it := range s.Items {
			if it.ID == itemID {
				return it, true
			}
		}
		return Item{}, false
	}
	return Item{}, false
}

// Lookup is Find with an error carrying a hint, for command-line callers.
func (c *Catalog) Lookup(sectionID, itemID string) (Item, error) {
	if it, ok := c.Find(sectionID, itemID); ok {
		return it, nil
	}
	return Item{}, fmt.Errorf("%w: %s/%s (run 'devdock-site docs' to list available pages)", ErrNotFound, sectionID, itemID)
}

// Flatten returns every (section, item) pair in catalog order.
func (c *Catalog) Flatten() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len returns the number of items across all sections.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// First returns the first entry, which is where the docs root lands.
func (c *Catalog) First() (Entry, bool) {
	return c.at(0)
}
