package events

import (
	"time"
)

// Event type tags as they appear on the wire (EventBridge detail-type
// and WebSocket message type).
const (
	TypePageCreated     = "page.created"
	TypePageUpdated     = "page.updated"
	TypePagePublished   = "page.published"
	TypePageUnpublished = "page.unpublished"
	TypePageDeleted     = "page.deleted"
	TypeSectionUpserted = "page.section.upserted"
)

// PageCreated is raised when a new page document is created
type PageCreated struct {
	BaseEvent
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// NewPageCreated creates a PageCreated event
func NewPageCreated(pageID, slug, title string, at time.Time) PageCreated {
	return PageCreated{
		BaseEvent: BaseEvent{Type: TypePageCreated, PageID: pageID, Timestamp: at},
		Slug:      slug,
		Title:     title,
	}
}

// PageUpdated is raised when page-level fields change
type PageUpdated struct {
	BaseEvent
	Slug string `json:"slug"`
}

// NewPageUpdated creates a PageUpdated event
func NewPageUpdated(pageID, slug string, at time.Time) PageUpdated {
	return PageUpdated{
		BaseEvent: BaseEvent{Type: TypePageUpdated, PageID: pageID, Timestamp: at},
		Slug:      slug,
	}
}

// SectionUpserted is raised when a single section is created or mutated
type SectionUpserted struct {
	BaseEvent
	Slug      string `json:"slug"`
	SectionID string `json:"sectionId"`
	Created   bool   `json:"created"`
}

// NewSectionUpserted creates a SectionUpserted event
func NewSectionUpserted(pageID, slug, sectionID string, created bool, at time.Time) SectionUpserted {
	return SectionUpserted{
		BaseEvent: BaseEvent{Type: TypeSectionUpserted, PageID: pageID, Timestamp: at},
		Slug:      slug,
		SectionID: sectionID,
		Created:   created,
	}
}

// PagePublished is raised when a page becomes visible to end-user views
type PagePublished struct {
	BaseEvent
	Slug string `json:"slug"`
}

// NewPagePublished creates a PagePublished event
func NewPagePublished(pageID, slug string, at time.Time) PagePublished {
	return PagePublished{
		BaseEvent: BaseEvent{Type: TypePagePublished, PageID: pageID, Timestamp: at},
		Slug:      slug,
	}
}

// PageUnpublished is raised when a page is withdrawn from end-user views
type PageUnpublished struct {
	BaseEvent
	Slug string `json:"slug"`
}

// NewPageUnpublished creates a PageUnpublished event
func NewPageUnpublished(pageID, slug string, at time.Time) PageUnpublished {
	return PageUnpublished{
		BaseEvent: BaseEvent{Type: TypePageUnpublished, PageID: pageID, Timestamp: at},
		Slug:      slug,
	}
}

// PageDeleted is raised when a page document is removed entirely
type PageDeleted struct {
	BaseEvent
	Slug string `json:"slug"`
}

// NewPageDeleted creates a PageDeleted event
func NewPageDeleted(pageID, slug string, at time.Time) PageDeleted {
	return PageDeleted{
		BaseEvent: BaseEvent{Type: TypePageDeleted, PageID: pageID, Timestamp: at},
		Slug:      slug,
	}
}
