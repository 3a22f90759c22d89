// Package catalog holds the compile-time default sections used to
// backfill missing page content at read time. Entries are keyed by
// (slug, section id), are never persisted directly, and exist so a
// page renders correctly before any editor has touched it.
package catalog

import (
	"sort"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
)

// Catalog is an immutable (slug, sectionID) -> Section lookup table
// built once at startup.
type Catalog struct {
	byPage map[string][]valueobjects.Section
	index  map[string]map[string]valueobjects.Section
}

// NewCatalog builds a catalog from per-page default section lists.
// The input is deep-copied; later mutation of the argument has no
// effect on the catalog.
func NewCatalog(pages map[string][]valueobjects.Section) *Catalog {
	c := &Catalog{
		byPage: make(map[string][]valueobjects.Section, len(pages)),
		index:  make(map[string]map[string]valueobjects.Section, len(pages)),
	}

	for slug, sections := range pages {
		copied := make([]valueobjects.Section, 0, len(sections))
		idx := make(map[string]valueobjects.Section, len(sections))
		for _, s := range sections {
			clone := s.Clone()
			copied = append(copied, clone)
			idx[s.ID] = clone
		}
		c.byPage[slug] = copied
		c.index[slug] = idx
	}

	return c
}

// Lookup returns the default section for (slug, sectionID), if any.
// The returned section is a copy; callers may mutate it freely.
func (c *Catalog) Lookup(slug, sectionID string) (valueobjects.Section, bool) {
	idx, ok := c.index[slug]
	if !ok {
		return valueobjects.Section{}, false
	}
	s, ok := idx[sectionID]
	if !ok {
		return valueobjects.Section{}, false
	}
	return s.Clone(), true
}

// Defaults returns a copy of all default sections for a slug, in
// declaration order.
func (c *Catalog) Defaults(slug string) []valueobjects.Section {
	sections, ok := c.byPage[slug]
	if !ok {
		return nil
	}
	copied := make([]valueobjects.Section, 0, len(sections))
	for _, s := range sections {
		copied = append(copied, s.Clone())
	}
	return copied
}

// Slugs returns every slug with default content, sorted for
// deterministic iteration in setup flows.
func (c *Catalog) Slugs() []string {
	slugs := make([]string, 0, len(c.byPage))
	for slug := range c.byPage {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
