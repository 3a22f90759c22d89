package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// GetPageHandler serves single-page lookups by slug or id.
type GetPageHandler struct {
	pageRepo ports.PageRepository
	logger   *zap.Logger
}

func NewGetPageHandler(pageRepo ports.PageRepository, logger *zap.Logger) *GetPageHandler {
	return &GetPageHandler{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

// HandleBySlug loads a page document by its slug. A missing document is
// a not-found error; duplicate-slug anomalies are resolved inside the
// repository.
func (h *GetPageHandler) HandleBySlug(ctx context.Context, query queries.GetPageBySlugQuery) (*entities.Page, error) {
	page, err := h.pageRepo.GetBySlug(ctx, query.Slug, query.PublishedOnly)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, err
		}
		h.logger.Error("failed to get page by slug",
			zap.String("slug", query.Slug),
			zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to get page")
	}
	return page, nil
}

// HandleByID loads a page document by its identifier.
func (h *GetPageHandler) HandleByID(ctx context.Context, query queries.GetPageByIDQuery) (*entities.Page, error) {
	pageID, err := valueobjects.NewPageIDFromString(query.PageID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid page ID format")
	}

	page, err := h.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, err
		}
		h.logger.Error("failed to get page by id",
			zap.String("page_id", query.PageID),
			zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to get page")
	}
	return page, nil
}
