package docs

// IndexOf returns the position of (sectionID, itemID) in Flatten's order,
// or -1 if the pair is not in the catalog.
func (c *Catalog) IndexOf(sectionID, itemID string) int {
	for i, e := range c.entries {
		if e.SectionID == sectionID && e.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// Previous returns the entry before pos. There is nothing before the first
// entry; positions never wrap.
func (c *Catalog) Previous(pos int) (Entry, bool) {
	if pos <= 0 {
		return Entry{}, false
	}
	return c.at(pos - 1)
}

// Next returns the entry after pos, or false at the last entry.
func (c *Catalog) Next(pos int) (Entry, bool) {
	if pos < -1 {
		return Entry{}, false
	}
	return c.at(pos + 1)
}

// Neighbors resolves the previous and next entries for a page. Both are nil
// when the page is unknown.
func (c *Catalog) Neighbors(sectionID, itemID string) (prev, next *Entry) {
	pos := c.IndexOf(sectionID, itemID)
	if pos < 0 {
		return nil, nil
	}
	if e, ok := c.Previous(pos); ok {
		prev = &e
	}
	if e, ok := c.Next(pos); ok {
		next = &e
	}
	return prev, next
}

func (c *Catalog) at(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}
