package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/services"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// ResolveSectionHandler answers section lookups with catalog fallback:
// persisted content wins, otherwise the compiled-in default fills in.
type ResolveSectionHandler struct {
	pageRepo ports.PageRepository
	resolver *services.SectionResolver
	logger   *zap.Logger
}

func NewResolveSectionHandler(pageRepo ports.PageRepository, resolver *services.SectionResolver, logger *zap.Logger) *ResolveSectionHandler {
	return &ResolveSectionHandler{
		pageRepo: pageRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Handle resolves a section for (slug, sectionID). A missing page is
// not an error here; the page may render entirely from defaults.
func (h *ResolveSectionHandler) Handle(ctx context.Context, query queries.ResolveSectionQuery) (valueobjects.Section, error) {
	page, err := h.pageRepo.GetBySlug(ctx, query.Slug, query.PublishedOnly)
	if err != nil && !pkgerrors.IsNotFound(err) {
		h.logger.Error("failed to load page for section resolve",
			zap.String("slug", query.Slug),
			zap.String("section_id", query.SectionID),
			zap.Error(err))
		return valueobjects.Section{}, pkgerrors.Wrap(err, "failed to resolve section")
	}

	if page == nil {
		return h.resolver.ResolveForSlug(query.Slug, query.SectionID)
	}
	return h.resolver.Resolve(page, query.SectionID)
}
