package ports

import (
	"context"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/events"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/auth"
)

// PageRepository defines the interface for page persistence.
// This is a port in hexagonal architecture - the domain doesn't know
// about the implementation.
type PageRepository interface {
	// Save persists a page (create or update). Create stamps both
	// timestamps; update preserves CreatedAt and stamps UpdatedAt.
	Save(ctx context.Context, page *entities.Page) error

	// GetByID retrieves a page by its store id
	GetByID(ctx context.Context, id valueobjects.PageID) (*entities.Page, error)

	// GetBySlug retrieves a page by its unique slug. With publishedOnly
	// set, unpublished pages are reported as not found. If more than one
	// document matches the slug the store is inconsistent; any one record
	// may be returned but the condition must be logged as a data error.
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*entities.Page, error)

	// ListAll returns every page for editor tooling. The dataset is
	// small and bounded by the number of site pages, so no pagination.
	ListAll(ctx context.Context) ([]*entities.Page, error)

	// UpsertSection loads the page, shallow-merges the patch into the
	// matching section (or appends a new one with editable defaulting to
	// true) and writes the full section list back. Read-modify-write on
	// the whole document: two interleaved calls on the same page race and
	// the later write wins. Returns the updated page.
	UpsertSection(ctx context.Context, pageID string, sectionID string, patch valueobjects.SectionPatch) (*entities.Page, error)

	// Delete removes the page entirely; no soft-delete
	Delete(ctx context.Context, id valueobjects.PageID) error
}

// PageObserver receives page snapshots from a sync channel. A nil page
// means no published document matches the slug, or the transport failed.
type PageObserver func(page *entities.Page)

// Unsubscribe stops delivery to one observer. Calling it more than once
// is safe and has no further side effects.
type Unsubscribe func()

// SyncChannel is the realtime subscription primitive: observers get the
// current page immediately on subscribe and a fresh snapshot after every
// committed change, including changes from their own writes.
type SyncChannel interface {
	Subscribe(slug string, observer PageObserver) (Unsubscribe, error)
}

// ChangeNotifier is invoked after every committed write so the sync
// channel can rebroadcast the affected document.
type ChangeNotifier interface {
	PageChanged(ctx context.Context, slug string)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// Cache defines the interface for caching
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value in cache with TTL in seconds
	Set(ctx context.Context, key string, value interface{}, ttl int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear removes all values from cache
	Clear(ctx context.Context) error
}

// BlobStore uploads a file and returns a stable URL. The URL is written
// into a section's content or metadata exactly like any other field.
type BlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// IdentityService supplies the role for a session token. It is consumed
// read-only to gate the edit affordance; the store itself performs no
// authorization check.
type IdentityService interface {
	RoleOf(ctx context.Context, token string) (auth.Role, error)
}
