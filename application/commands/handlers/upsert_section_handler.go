package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/services"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// UpsertSectionHandler applies a single-section patch to a page. The
// repository performs the read-modify-write; this handler routes the
// command, seeds first writes from the default catalog, publishes
// events and notifies subscribers.
type UpsertSectionHandler struct {
	pageRepo       ports.PageRepository
	resolver       *services.SectionResolver
	eventPublisher ports.EventPublisher
	notifier       ports.ChangeNotifier
	logger         *zap.Logger
}

func NewUpsertSectionHandler(
	pageRepo ports.PageRepository,
	resolver *services.SectionResolver,
	eventPublisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *UpsertSectionHandler {
	return &UpsertSectionHandler{
		pageRepo:       pageRepo,
		resolver:       resolver,
		eventPublisher: eventPublisher,
		notifier:       notifier,
		logger:         logger,
	}
}

// Handle executes exactly one upsert per invocation. When the target
// section is not persisted yet but the default catalog carries an entry
// for it, the write starts from that default and the patch is merged on
// top, so a partial first write keeps the default's type and metadata.
func (h *UpsertSectionHandler) Handle(ctx context.Context, cmd commands.UpsertSectionCommand) (*entities.Page, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	patch, err := h.seedFirstWrite(ctx, cmd)
	if err != nil {
		return nil, err
	}

	page, err := h.pageRepo.UpsertSection(ctx, cmd.PageID, cmd.SectionID, patch)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, err
		}
		h.logger.Error("failed to upsert section",
			zap.String("page_id", cmd.PageID),
			zap.String("section_id", cmd.SectionID),
			zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to upsert section")
	}

	h.publishEvents(ctx, page)
	h.notifier.PageChanged(ctx, page.Slug().String())

	return page, nil
}

// seedFirstWrite returns the patch to apply: the command's patch as is
// when the page already persists the section or no default exists, the
// patch seeded from the catalog default otherwise.
func (h *UpsertSectionHandler) seedFirstWrite(ctx context.Context, cmd commands.UpsertSectionCommand) (valueobjects.SectionPatch, error) {
	pageID, err := valueobjects.NewPageIDFromString(cmd.PageID)
	if err != nil {
		return valueobjects.SectionPatch{}, pkgerrors.NewValidationError("invalid page ID format")
	}

	page, err := h.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return valueobjects.SectionPatch{}, err
		}
		return valueobjects.SectionPatch{}, pkgerrors.Wrap(err, "failed to load page for upsert")
	}

	if _, exists := page.Section(cmd.SectionID); exists {
		return cmd.Patch, nil
	}

	def, err := h.resolver.ResolveForSlug(page.Slug().String(), cmd.SectionID)
	if err != nil {
		return cmd.Patch, nil
	}
	return cmd.Patch.SeedFrom(def), nil
}

func (h *UpsertSectionHandler) publishEvents(ctx context.Context, page *entities.Page) {
	pending := page.GetUncommittedEvents()
	if len(pending) == 0 {
		return
	}
	if err := h.eventPublisher.PublishBatch(ctx, pending); err != nil {
		h.logger.Warn("failed to publish section events",
			zap.String("page_id", page.ID().String()),
			zap.Error(err))
		return
	}
	page.MarkEventsAsCommitted()
}
