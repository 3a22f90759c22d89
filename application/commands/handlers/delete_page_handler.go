package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/events"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// DeletePageHandler removes a page document for good. Subscribers to
// the slug fall back to catalog defaults after the delete.
type DeletePageHandler struct {
	pageRepo       ports.PageRepository
	eventPublisher ports.EventPublisher
	notifier       ports.ChangeNotifier
	logger         *zap.Logger
}

func NewDeletePageHandler(
	pageRepo ports.PageRepository,
	eventPublisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	logger *zap.Logger,
) *DeletePageHandler {
	return &DeletePageHandler{
		pageRepo:       pageRepo,
		eventPublisher: eventPublisher,
		notifier:       notifier,
		logger:         logger,
	}
}

// Handle deletes the page. The page is loaded first so the slug is
// known for the notification and the deleted event.
func (h *DeletePageHandler) Handle(ctx context.Context, cmd commands.DeletePageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pageID, err := valueobjects.NewPageIDFromString(cmd.PageID)
	if err != nil {
		return pkgerrors.NewValidationError("invalid page ID format")
	}

	page, err := h.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		return err
	}
	slug := page.Slug().String()

	if err := h.pageRepo.Delete(ctx, pageID); err != nil {
		h.logger.Error("failed to delete page",
			zap.String("page_id", cmd.PageID),
			zap.String("slug", slug),
			zap.Error(err))
		return pkgerrors.Wrap(err, "failed to delete page")
	}

	deleted := events.NewPageDeleted(pageID.String(), slug, time.Now())
	if err := h.eventPublisher.Publish(ctx, deleted); err != nil {
		h.logger.Warn("failed to publish page deleted event",
			zap.String("page_id", cmd.PageID),
			zap.Error(err))
	}

	h.notifier.PageChanged(ctx, slug)

	h.logger.Info("page deleted",
		zap.String("page_id", cmd.PageID),
		zap.String("slug", slug))
	return nil
}
