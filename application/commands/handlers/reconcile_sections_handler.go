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

// ReconcileSectionsHandler materializes catalog defaults into a page
// document: absent sections are appended, empty-content sections are
// filled, sections already holding content are left untouched. A page
// that already matches its defaults writes nothing.
type ReconcileSectionsHandler struct {
	pageRepo       ports.PageRepository
	resolver       *services.SectionResolver
	eventPublisher ports.EventPublisher
	notifier       ports.ChangeNotifier
	logger         *zap.Logger
}

func NewReconcileSectionsHandler(
	pageRepo ports.PageRepository,
	resolver *services.SectionResolver,
	eventPublisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *ReconcileSectionsHandler {
	return &ReconcileSectionsHandler{
		pageRepo:       pageRepo,
		resolver:       resolver,
		eventPublisher: eventPublisher,
		notifier:       notifier,
		logger:         logger,
	}
}

// Handle reconciles one slug. Returns the page and whether a write
// happened, so bulk callers can report per-page outcomes.
func (h *ReconcileSectionsHandler) Handle(ctx context.Context, cmd commands.ReconcileSectionsCommand) (*entities.Page, bool, error) {
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	defaults := h.resolver.Defaults(cmd.Slug)
	if len(defaults) == 0 {
		return nil, false, pkgerrors.NewNotFoundError("no defaults registered for slug")
	}

	page, err := h.pageRepo.GetBySlug(ctx, cmd.Slug, false)
	if err != nil && !pkgerrors.IsNotFound(err) {
		h.logger.Error("failed to load page for reconciliation",
			zap.String("slug", cmd.Slug),
			zap.Error(err))
		return nil, false, pkgerrors.Wrap(err, "failed to load page")
	}

	if page == nil {
		if !cmd.CreateIfMissing {
			return nil, false, pkgerrors.NewNotFoundError("page")
		}
		page, err = h.createFromDefaults(cmd.Slug)
		if err != nil {
			return nil, false, err
		}
	}

	changed := page.ReconcileDefaults(defaults)
	if !changed {
		h.logger.Debug("page already reconciled", zap.String("slug", cmd.Slug))
		return page, false, nil
	}

	if err := h.pageRepo.Save(ctx, page); err != nil {
		h.logger.Error("failed to save reconciled page",
			zap.String("slug", cmd.Slug),
			zap.Error(err))
		return nil, false, pkgerrors.Wrap(err, "failed to save reconciled page")
	}

	h.publishEvents(ctx, page)
	h.notifier.PageChanged(ctx, cmd.Slug)

	h.logger.Info("reconciled page sections",
		zap.String("slug", cmd.Slug),
		zap.Int("section_count", len(page.Sections())))
	return page, true, nil
}

// HandleAll reconciles every slug the catalog knows about. Individual
// failures are logged and counted but do not abort the run.
func (h *ReconcileSectionsHandler) HandleAll(ctx context.Context, createIfMissing bool) (int, error) {
	var written int
	var failures int

	for _, slug := range h.resolver.CatalogSlugs() {
		_, changed, err := h.Handle(ctx, commands.ReconcileSectionsCommand{
			Slug:            slug,
			CreateIfMissing: createIfMissing,
		})
		if err != nil {
			failures++
			h.logger.Warn("reconciliation failed for slug",
				zap.String("slug", slug),
				zap.Error(err))
			continue
		}
		if changed {
			written++
		}
	}

	if failures > 0 {
		return written, pkgerrors.NewInternalError("reconciliation completed with failures")
	}
	return written, nil
}

func (h *ReconcileSectionsHandler) createFromDefaults(rawSlug string) (*entities.Page, error) {
	slug, err := valueobjects.NewSlug(rawSlug)
	if err != nil {
		return nil, err
	}
	// New pages start unpublished so defaults can be reviewed first.
	return entities.NewPage(slug, "")
}

func (h *ReconcileSectionsHandler) publishEvents(ctx context.Context, page *entities.Page) {
	pending := page.GetUncommittedEvents()
	if len(pending) == 0 {
		return
	}
	if err := h.eventPublisher.PublishBatch(ctx, pending); err != nil {
		h.logger.Warn("failed to publish reconciliation events",
			zap.String("page_id", page.ID().String()),
			zap.Error(err))
		return
	}
	page.MarkEventsAsCommitted()
}
