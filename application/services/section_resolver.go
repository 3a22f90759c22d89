package services

import (
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/catalog"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// SectionResolver reconciles persisted sections against the default
// section catalog. It is a pure, side-effect-free read path: resolving
// a default never writes it to storage.
type SectionResolver struct {
	catalog *catalog.Catalog
}

// NewSectionResolver creates a resolver over the given catalog
func NewSectionResolver(c *catalog.Catalog) *SectionResolver {
	return &SectionResolver{catalog: c}
}

// Resolve returns the persisted section verbatim when the page has one,
// otherwise the catalog default for (page.slug, sectionID) unmodified.
// When neither exists the caller gets an explicit not-found error, never
// a fabricated empty value.
func (r *SectionResolver) Resolve(page *entities.Page, sectionID string) (valueobjects.Section, error) {
	if page != nil {
		if section, ok := page.Section(sectionID); ok {
			return section, nil
		}
	}

	slug := ""
	if page != nil {
		slug = page.Slug().String()
	}
	if def, ok := r.catalog.Lookup(slug, sectionID); ok {
		return def, nil
	}

	return valueobjects.Section{}, pkgerrors.NewNotFoundError("section")
}

// ResolveForSlug is the page-less variant used when no document exists
// for the slug yet: the page renders entirely from catalog defaults.
func (r *SectionResolver) ResolveForSlug(slug, sectionID string) (valueobjects.Section, error) {
	if def, ok := r.catalog.Lookup(slug, sectionID); ok {
		return def, nil
	}
	return valueobjects.Section{}, pkgerrors.NewNotFoundError("section")
}

// ResolveAll returns the full render list for a slug: every persisted
// section plus any catalog defaults the page does not persist yet.
// Persisted content always wins over defaults.
func (r *SectionResolver) ResolveAll(slug string, page *entities.Page) []valueobjects.Section {
	var resolved []valueobjects.Section
	seen := make(map[string]bool)

	if page != nil {
		for _, s := range page.Sections() {
			resolved = append(resolved, s)
			seen[s.ID] = true
		}
	}

	for _, def := range r.catalog.Defaults(slug) {
		if !seen[def.ID] {
			resolved = append(resolved, def)
		}
	}

	return resolved
}

// Defaults exposes the catalog defaults for a slug, used by the bulk
// reconciliation flow.
func (r *SectionResolver) Defaults(slug string) []valueobjects.Section {
	return r.catalog.Defaults(slug)
}

// CatalogSlugs lists every slug the catalog carries defaults for.
func (r *SectionResolver) CatalogSlugs() []string {
	return r.catalog.Slugs()
}
