package docs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Sections []sectionFile `yaml:"sections"`
}

type sectionFile struct {
	ID    string     `yaml:"id"`
	Title string     `yaml:"title"`
	Items []itemFile `yaml:"items"`
}

type itemFile struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	File    string `yaml:"file"` // Markdown file, relative to the catalog file
}

// Load reads a YAML catalog from path. Items may inline their Markdown under
// 'content' or point at a file with 'file'.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes a YAML catalog. Relative 'file' entries resolve against baseDir.
func Parse(data []byte, baseDir string) (*Catalog, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(cf.Sections) == 0 {
		return nil, fmt.Errorf("%w: at least one section is required", ErrInvalidCatalog)
	}

	sections := make([]Section, 0, len(cf.Sections))
	for _, sf := range cf.Sections {
		s := Section{ID: sf.ID, Title: sf.Title, Items: make([]Item, 0, len(sf.Items))}
		for _, f := range sf.Items {
			it := Item{ID: f.ID, Title: f.Title, Content: f.Content}
			if f.File != "" {
				if f.Content != "" {
					return nil, fmt.Errorf("%w: item %s/%s: 'content' and 'file' are mutually exclusive", ErrInvalidCatalog, sf.ID, f.ID)
				}
				p := f.File
				if !filepath.IsAbs(p) {
					p = filepath.Join(baseDir, p)
				}
				body, err := os.ReadFile(p)
				if err != nil {
					return nil, fmt.Errorf("item %s/%s: reading %s: %w", sf.ID, f.ID, f.File, err)
				}
				it.Content = string(body)
			}
			s.Items = append(s.Items, it)
		}
		sections = append(sections, s)
	}
	return New(sections)
}
