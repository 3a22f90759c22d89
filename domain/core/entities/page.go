package entities

import (
	"fmt"
	"time"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/config"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/events"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// Page is the main entity: one routable content document identified by
// a unique slug, holding an ordered collection of sections unique by id.
// This is a rich domain model with encapsulated business logic.
type Page struct {
	// Private fields ensure encapsulation
	id             valueobjects.PageID
	slug           valueobjects.Slug
	title          string
	seoTitle       string
	seoDescription string
	published      bool
	sections       []valueobjects.Section
	createdAt      time.Time
	updatedAt      time.Time

	// Domain events that occurred during this aggregate's lifetime
	events []events.DomainEvent
}

// NewPage creates a new page with business rule validation
func NewPage(slug valueobjects.Slug, title string) (*Page, error) {
	if slug.IsZero() {
		return nil, pkgerrors.NewValidationError("slug cannot be empty")
	}

	now := time.Now()
	page := &Page{
		id:        valueobjects.NewPageID(),
		slug:      slug,
		title:     title,
		published: false,
		sections:  []valueobjects.Section{},
		createdAt: now,
		updatedAt: now,
		events:    []events.DomainEvent{},
	}

	page.addEvent(events.NewPageCreated(page.id.String(), slug.String(), title, now))

	return page, nil
}

// ReconstructPage reconstructs a page from repository data with
// preserved timestamps. No events are raised here.
func ReconstructPage(
	id valueobjects.PageID,
	slug valueobjects.Slug,
	title, seoTitle, seoDescription string,
	published bool,
	sections []valueobjects.Section,
	createdAt, updatedAt time.Time,
) (*Page, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("page id cannot be empty")
	}
	if slug.IsZero() {
		return nil, pkgerrors.NewValidationError("slug cannot be empty")
	}

	copied := make([]valueobjects.Section, 0, len(sections))
	for _, s := range sections {
		copied = append(copied, s.Clone())
	}

	return &Page{
		id:             id,
		slug:           slug,
		title:          title,
		seoTitle:       seoTitle,
		seoDescription: seoDescription,
		published:      published,
		sections:       copied,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		events:         []events.DomainEvent{},
	}, nil
}

// ID returns the page's store identifier
func (p *Page) ID() valueobjects.PageID {
	return p.id
}

// Slug returns the page's unique slug
func (p *Page) Slug() valueobjects.Slug {
	return p.slug
}

// Title returns the page title
func (p *Page) Title() string {
	return p.title
}

// SEOTitle returns the SEO title
func (p *Page) SEOTitle() string {
	return p.seoTitle
}

// SEODescription returns the SEO description
func (p *Page) SEODescription() string {
	return p.seoDescription
}

// IsPublished reports whether end-user views may see this page
func (p *Page) IsPublished() bool {
	return p.published
}

// CreatedAt returns when the page was created
func (p *Page) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the page was last updated
func (p *Page) UpdatedAt() time.Time {
	return p.updatedAt
}

// Sections returns a copy of the section list to maintain encapsulation
func (p *Page) Sections() []valueobjects.Section {
	sections := make([]valueobjects.Section, 0, len(p.sections))
	for _, s := range p.sections {
		sections = append(sections, s.Clone())
	}
	return sections
}

// Section looks up a section by exact id match. Order is not
// semantically significant; lookup is always by id, not position.
func (p *Page) Section(sectionID string) (valueobjects.Section, bool) {
	for _, s := range p.sections {
		if s.ID == sectionID {
			return s.Clone(), true
		}
	}
	return valueobjects.Section{}, false
}

// SetTitle updates the page title
func (p *Page) SetTitle(title string) {
	if title == p.title {
		return
	}
	p.title = title
	p.touch()
}

// SetSEO updates the SEO fields
func (p *Page) SetSEO(seoTitle, seoDescription string) {
	if seoTitle == p.seoTitle && seoDescription == p.seoDescription {
		return
	}
	p.seoTitle = seoTitle
	p.seoDescription = seoDescription
	p.touch()
}

// Publish makes the page visible to end-user views
func (p *Page) Publish() {
	if p.published {
		return
	}
	p.published = true
	p.touch()
	p.addEvent(events.NewPagePublished(p.id.String(), p.slug.String(), p.updatedAt))
}

// Unpublish withdraws the page from end-user views. Editor tooling can
// still read and write it.
func (p *Page) Unpublish() {
	if !p.published {
		return
	}
	p.published = false
	p.touch()
	p.addEvent(events.NewPageUnpublished(p.id.String(), p.slug.String(), p.updatedAt))
}

// UpsertSection merges a patch into the section with the given id, or
// appends a new section built from the patch when no section matches.
// Returns the resulting section and whether it was newly created.
func (p *Page) UpsertSection(sectionID string, patch valueobjects.SectionPatch) (valueobjects.Section, bool, error) {
	return p.UpsertSectionWithConfig(sectionID, patch, config.DefaultDomainConfig())
}

// UpsertSectionWithConfig merges a patch with configuration limits
func (p *Page) UpsertSectionWithConfig(sectionID string, patch valueobjects.SectionPatch, cfg *config.DomainConfig) (valueobjects.Section, bool, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if sectionID == "" {
		return valueobjects.Section{}, false, pkgerrors.NewValidationError("section id cannot be empty")
	}
	if patch.Content != nil && len(*patch.Content) > cfg.MaxContentLength {
		return valueobjects.Section{}, false, pkgerrors.NewValidationError("section content exceeds maximum length")
	}

	for i, s := range p.sections {
		if s.ID == sectionID {
			merged := s.Merge(patch)
			p.sections[i] = merged
			p.touch()
			p.addEvent(events.NewSectionUpserted(p.id.String(), p.slug.String(), sectionID, false, p.updatedAt))
			return merged.Clone(), false, nil
		}
	}

	if len(p.sections) >= cfg.MaxSectionsPerPage {
		return valueobjects.Section{}, false, fmt.Errorf("maximum sections reached: %d", cfg.MaxSectionsPerPage)
	}

	created := valueobjects.SectionFromPatch(sectionID, patch)
	p.sections = append(p.sections, created)
	p.touch()
	p.addEvent(events.NewSectionUpserted(p.id.String(), p.slug.String(), sectionID, true, p.updatedAt))
	return created.Clone(), true, nil
}

// ReconcileDefaults merges a list of default sections into the page:
// a present, non-empty section is left untouched; a present but empty
// one is filled from the default without discarding unrelated metadata;
// an absent one is appended. Running it twice yields the same section
// list as running it once.
func (p *Page) ReconcileDefaults(defaults []valueobjects.Section) bool {
	changed := false

	for _, def := range defaults {
		idx := -1
		for i, s := range p.sections {
			if s.ID == def.ID {
				idx = i
				break
			}
		}

		switch {
		case idx < 0:
			p.sections = append(p.sections, def.Clone())
			changed = true
		case p.sections[idx].IsEmpty():
			p.sections[idx] = p.sections[idx].FillFrom(def)
			changed = true
		}
	}

	if changed {
		p.touch()
		p.addEvent(events.NewPageUpdated(p.id.String(), p.slug.String(), p.updatedAt))
	}

	return changed
}

// GetUncommittedEvents returns all uncommitted domain events
func (p *Page) GetUncommittedEvents() []events.DomainEvent {
	return p.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (p *Page) MarkEventsAsCommitted() {
	p.events = []events.DomainEvent{}
}

func (p *Page) touch() {
	p.updatedAt = time.Now()
}

func (p *Page) addEvent(event events.DomainEvent) {
	p.events = append(p.events, event)
}
