package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Index manages all available templates
type Index struct {
	templates map[string]*Metadata
	dir       string
}

// NewIndex loads the metadata of every dir/<name>/TEMPLATE.md. A missing
// directory yields an empty index.
func NewIndex(dir string) (*Index, error) {
	idx := &Index{
		templates: make(map[string]*Metadata),
		dir:       dir,
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name(), FileName)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		meta, err := LoadMetadata(path)
		if err != nil {
			continue // Skip invalid templates
		}

		// Use directory name as fallback if no name in frontmatter
		if meta.Name == "" {
			meta.Name = entry.Name()
		}

		idx.templates[meta.Name] = meta
	}

	return idx, nil
}

// Get returns metadata by name
func (idx *Index) Get(name string) (*Metadata, error) {
	if idx != nil {
		if meta, ok := idx.templates[name]; ok {
			return meta, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Load returns the full template by name
func (idx *Index) Load(name string) (*Template, error) {
	meta, err := idx.Get(name)
	if err != nil {
		return nil, err
	}
	return LoadFull(meta)
}

// List returns all metadata sorted by name
func (idx *Index) List() []*Metadata {
	if idx == nil {
		return nil
	}
	result := make([]*Metadata, 0, len(idx.templates))
	for _, meta := range idx.templates {
		result = append(result, meta)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Dir returns the templates directory path
func (idx *Index) Dir() string {
	return idx.dir
}

// Count returns the number of loaded templates
func (idx *Index) Count() int {
	if idx == nil {
		return 0
	}
	return len(idx.templates)
}
