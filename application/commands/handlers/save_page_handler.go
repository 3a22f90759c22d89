package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// SavePageHandler creates or updates a page document. Writes go through
// the repository's read-modify-write path; two concurrent saves of the
// same page do not merge, the later write wins.
type SavePageHandler struct {
	pageRepo       ports.PageRepository
	eventPublisher ports.EventPublisher
	notifier       ports.ChangeNotifier
	logger         *zap.Logger
}

func NewSavePageHandler(
	pageRepo ports.PageRepository,
	eventPublisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *SavePageHandler {
	return &SavePageHandler{
		pageRepo:       pageRepo,
		eventPublisher: eventPublisher,
		notifier:       notifier,
		logger:         logger,
	}
}

// Handle executes the save. Create stamps a fresh id; update loads the
// existing document so CreatedAt and sections survive the write.
func (h *SavePageHandler) Handle(ctx context.Context, cmd commands.SavePageCommand) (*entities.Page, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var page *entities.Page
	var err error

	if cmd.IsCreate() {
		page, err = h.createPage(ctx, cmd)
	} else {
		page, err = h.updatePage(ctx, cmd)
	}
	if err != nil {
		return nil, err
	}

	if err := h.pageRepo.Save(ctx, page); err != nil {
		h.logger.Error("failed to save page",
			zap.String("page_id", page.ID().String()),
			zap.String("slug", page.Slug().String()),
			zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to save page")
	}

	h.publishEvents(ctx, page)
	h.notifier.PageChanged(ctx, page.Slug().String())

	return page, nil
}

func (h *SavePageHandler) createPage(ctx context.Context, cmd commands.SavePageCommand) (*entities.Page, error) {
	slug, err := valueobjects.NewSlug(cmd.Slug)
	if err != nil {
		return nil, err
	}

	// The slug is the stable lookup key; a second document under the
	// same slug would make reads ambiguous.
	existing, err := h.pageRepo.GetBySlug(ctx, slug.String(), false)
	if err != nil && !pkgerrors.IsNotFound(err) {
		return nil, pkgerrors.Wrap(err, "failed to check slug uniqueness")
	}
	if existing != nil {
		return nil, pkgerrors.NewConflictError("page with this slug already exists")
	}

	page, err := entities.NewPage(slug, cmd.Title)
	if err != nil {
		return nil, err
	}

	page.SetSEO(cmd.SEOTitle, cmd.SEODescription)
	if cmd.Published != nil && *cmd.Published {
		page.Publish()
	}
	return page, nil
}

func (h *SavePageHandler) updatePage(ctx context.Context, cmd commands.SavePageCommand) (*entities.Page, error) {
	pageID, err := valueobjects.NewPageIDFromString(cmd.PageID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid page ID format")
	}

	page, err := h.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		return nil, err
	}

	if page.Slug().String() != cmd.Slug {
		return nil, pkgerrors.NewValidationError("page slug cannot be changed")
	}

	page.SetTitle(cmd.Title)
	page.SetSEO(cmd.SEOTitle, cmd.SEODescription)
	if cmd.Published != nil {
		if *cmd.Published {
			page.Publish()
		} else {
			page.Unpublish()
		}
	}
	return page, nil
}

// publishEvents flushes the aggregate's pending events. Event delivery
// is best effort; a broker outage must not fail a committed write.
func (h *SavePageHandler) publishEvents(ctx context.Context, page *entities.Page) {
	pending := page.GetUncommittedEvents()
	if len(pending) == 0 {
		return
	}
	if err := h.eventPublisher.PublishBatch(ctx, pending); err != nil {
		h.logger.Warn("failed to publish page events",
			zap.String("page_id", page.ID().String()),
			zap.Int("event_count", len(pending)),
			zap.Error(err))
		return
	}
	page.MarkEventsAsCommitted()
}
