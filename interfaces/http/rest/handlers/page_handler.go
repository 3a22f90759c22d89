package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands/bus"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries"
	querybus "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries/bus"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/auth"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/common"
)

// PageHandler serves the page document endpoints
type PageHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// pageResponse is the JSON shape of a page document
type pageResponse struct {
	ID             string                 `json:"id"`
	Slug           string                 `json:"slug"`
	Title          string                 `json:"title"`
	SEOTitle       string                 `json:"seoTitle,omitempty"`
	SEODescription string                 `json:"seoDescription,omitempty"`
	Published      bool                   `json:"published"`
	Sections       []valueobjects.Section `json:"sections"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

func toPageResponse(page *entities.Page) pageResponse {
	return pageResponse{
		ID:             page.ID().String(),
		Slug:           page.Slug().String(),
		Title:          page.Title(),
		SEOTitle:       page.SEOTitle(),
		SEODescription: page.SEODescription(),
		Published:      page.IsPublished(),
		Sections:       page.Sections(),
		CreatedAt:      page.CreatedAt(),
		UpdatedAt:      page.UpdatedAt(),
	}
}

// savePageRequest is the body for create and update
type savePageRequest struct {
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
	Published      *bool  `json:"published"`
}

// GetPage handles GET /pages/{slug}. Anonymous callers only see
// published pages; editors also read drafts.
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	result, err := h.queryBus.Ask(r.Context(), queries.GetPageBySlugQuery{
		Slug:          slug,
		PublishedOnly: !callerCanEdit(r),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	page, ok := result.(*entities.Page)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "unexpected query result")
		return
	}
	common.RespondJSON(w, http.StatusOK, toPageResponse(page))
}

// GetPageByID handles GET /admin/pages/{pageID}. Editor tooling reads
// by store id regardless of publish state.
func (h *PageHandler) GetPageByID(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetPageByIDQuery{PageID: pageID})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	page, ok := result.(*entities.Page)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "unexpected query result")
		return
	}
	common.RespondJSON(w, http.StatusOK, toPageResponse(page))
}

// ListPages handles GET /pages for editor tooling
func (h *PageHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListPagesQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	pages, ok := result.([]*entities.Page)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "unexpected query result")
		return
	}

	responses := make([]pageResponse, 0, len(pages))
	for _, page := range pages {
		responses = append(responses, toPageResponse(page))
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"pages": responses,
		"count": len(responses),
	})
}

// CreatePage handles POST /pages
func (h *PageHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req savePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.SavePageCommand{
		Slug:           req.Slug,
		Title:          req.Title,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Published:      req.Published,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetPageBySlugQuery{Slug: req.Slug})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	page, ok := result.(*entities.Page)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "unexpected query result")
		return
	}
	common.RespondJSON(w, http.StatusCreated, toPageResponse(page))
}

// UpdatePage handles PUT /pages/{pageID}
func (h *PageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	var req savePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.SavePageCommand{
		PageID:         pageID,
		Slug:           req.Slug,
		Title:          req.Title,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Published:      req.Published,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetPageByIDQuery{PageID: pageID})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	page, ok := result.(*entities.Page)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "unexpected query result")
		return
	}
	common.RespondJSON(w, http.StatusOK, toPageResponse(page))
}

// DeletePage handles DELETE /pages/{pageID}
func (h *PageHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	if err := h.commandBus.Send(r.Context(), commands.DeletePageCommand{PageID: pageID}); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusNoContent, nil)
}

// callerCanEdit reports whether the request carries an editing role
func callerCanEdit(r *http.Request) bool {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		return false
	}
	return user.Role.CanEdit()
}
