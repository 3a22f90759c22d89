package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// ListPagesHandler returns every page document in the store, used by
// admin tooling and the bulk reconciliation flow.
type ListPagesHandler struct {
	pageRepo ports.PageRepository
	logger   *zap.Logger
}

func NewListPagesHandler(pageRepo ports.PageRepository, logger *zap.Logger) *ListPagesHandler {
	return &ListPagesHandler{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

// Handle lists all pages. An empty store yields an empty slice, not an
// error.
func (h *ListPagesHandler) Handle(ctx context.Context, _ queries.ListPagesQuery) ([]*entities.Page, error) {
	pages, err := h.pageRepo.ListAll(ctx)
	if err != nil {
		h.logger.Error("failed to list pages", zap.Error(err))
		return nil, pkgerrors.Wrap(err, "failed to list pages")
	}
	if pages == nil {
		pages = []*entities.Page{}
	}
	return pages, nil
}
