package fixtures

import (
	"time"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
)

// PageBuilder builds page entities for tests with sensible defaults.
type PageBuilder struct {
	id             valueobjects.PageID
	slug           string
	title          string
	seoTitle       string
	seoDescription string
	published      bool
	sections       []valueobjects.Section
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPageBuilder() *PageBuilder {
	now := time.Now()
	return &PageBuilder{
		id:        valueobjects.NewPageID(),
		slug:      "home",
		title:     "Home",
		published: true,
		sections:  []valueobjects.Section{},
		createdAt: now.Add(-24 * time.Hour),
		updatedAt: now,
	}
}

func (b *PageBuilder) WithID(id valueobjects.PageID) *PageBuilder {
	b.id = id
	return b
}

func (b *PageBuilder) WithSlug(slug string) *PageBuilder {
	b.slug = slug
	return b
}

func (b *PageBuilder) WithTitle(title string) *PageBuilder {
	b.title = title
	return b
}

func (b *PageBuilder) WithSEO(title, description string) *PageBuilder {
	b.seoTitle = title
	b.seoDescription = description
	return b
}

func (b *PageBuilder) Unpublished() *PageBuilder {
	b.published = false
	return b
}

func (b *PageBuilder) WithSection(section valueobjects.Section) *PageBuilder {
	b.sections = append(b.sections, section)
	return b
}

func (b *PageBuilder) WithTextSection(id, content string) *PageBuilder {
	return b.WithSection(valueobjects.Section{
		ID:       id,
		Type:     valueobjects.SectionParagraph,
		Content:  content,
		Editable: true,
	})
}

func (b *PageBuilder) WithCreatedAt(t time.Time) *PageBuilder {
	b.createdAt = t
	return b
}

// Build panics on invalid input so test setup mistakes fail loudly.
func (b *PageBuilder) Build() *entities.Page {
	slug, err := valueobjects.NewSlug(b.slug)
	if err != nil {
		panic(err)
	}
	page, err := entities.ReconstructPage(
		b.id, slug,
		b.title, b.seoTitle, b.seoDescription,
		b.published, b.sections,
		b.createdAt, b.updatedAt,
	)
	if err != nil {
		panic(err)
	}
	return page
}
