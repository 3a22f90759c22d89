package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// PageRepository is an in-memory implementation of ports.PageRepository
// for local development and tests. Pages are stored as reconstructed
// copies so callers cannot mutate the store through shared pointers.
type PageRepository struct {
	mu     sync.RWMutex
	byID   map[string]*entities.Page
	logger *zap.Logger
}

// NewPageRepository creates an empty in-memory repository
func NewPageRepository(logger *zap.Logger) *PageRepository {
	return &PageRepository{
		byID:   make(map[string]*entities.Page),
		logger: logger,
	}
}

func (r *PageRepository) Save(ctx context.Context, page *entities.Page) error {
	copied, err := clonePage(page)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.byID[page.ID().String()] = copied
	r.mu.Unlock()
	return nil
}

func (r *PageRepository) GetByID(ctx context.Context, id valueobjects.PageID) (*entities.Page, error) {
	r.mu.RLock()
	page, ok := r.byID[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, pkgerrors.NewNotFoundError("page")
	}
	return clonePage(page)
}

func (r *PageRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*entities.Page, error) {
	r.mu.RLock()
	var matches []*entities.Page
	for _, page := range r.byID {
		if page.Slug().String() == slug {
			matches = append(matches, page)
		}
	}
	r.mu.RUnlock()

	if len(matches) == 0 {
		return nil, pkgerrors.NewNotFoundError("page")
	}
	if len(matches) > 1 {
		r.logger.Error("duplicate page documents for slug", zap.String("slug", slug))
	}

	page := matches[0]
	if publishedOnly && !page.IsPublished() {
		return nil, pkgerrors.NewNotFoundError("page")
	}
	return clonePage(page)
}

func (r *PageRepository) ListAll(ctx context.Context) ([]*entities.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pages := make([]*entities.Page, 0, len(r.byID))
	for _, page := range r.byID {
		copied, err := clonePage(page)
		if err != nil {
			return nil, err
		}
		pages = append(pages, copied)
	}
	return pages, nil
}

func (r *PageRepository) UpsertSection(ctx context.Context, pageID string, sectionID string, patch valueobjects.SectionPatch) (*entities.Page, error) {
	id, err := valueobjects.NewPageIDFromString(pageID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid page ID format")
	}

	// Full read-modify-write under one lock; the last caller wins.
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id.String()]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("page")
	}

	page, err := clonePage(stored)
	if err != nil {
		return nil, err
	}
	if _, _, err := page.UpsertSection(sectionID, patch); err != nil {
		return nil, err
	}

	copied, err := clonePage(page)
	if err != nil {
		return nil, err
	}
	r.byID[id.String()] = copied

	return page, nil
}

func (r *PageRepository) Delete(ctx context.Context, id valueobjects.PageID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id.String()]; !ok {
		return pkgerrors.NewNotFoundError("page")
	}
	delete(r.byID, id.String())
	return nil
}

func clonePage(page *entities.Page) (*entities.Page, error) {
	return entities.ReconstructPage(
		page.ID(), page.Slug(),
		page.Title(), page.SEOTitle(), page.SEODescription(),
		page.IsPublished(), page.Sections(),
		page.CreatedAt(), page.UpdatedAt(),
	)
}

var _ ports.PageRepository = (*PageRepository)(nil)
