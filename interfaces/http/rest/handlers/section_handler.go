package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/commands/bus"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries"
	querybus "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/queries/bus"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/common"
)

// SectionHandler serves the section endpoints
type SectionHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *SectionHandler {
	return &SectionHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// ResolveSection handles GET /pages/{slug}/sections/{sectionID}. The
// response is the persisted section when one exists, otherwise the
// compiled-in default for that position.
func (h *SectionHandler) ResolveSection(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	sectionID := chi.URLParam(r, "sectionID")

	result, err := h.queryBus.Ask(r.Context(), queries.ResolveSectionQuery{
		Slug:          slug,
		SectionID:     sectionID,
		PublishedOnly: !callerCanEdit(r),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	section, ok := result.(valueobjects.Section)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "unexpected query result")
		return
	}
	common.RespondJSON(w, http.StatusOK, section)
}

// UpsertSection handles PUT /pages/{pageID}/sections/{sectionID}.
// Absent body fields leave the stored values untouched.
func (h *SectionHandler) UpsertSection(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	sectionID := chi.URLParam(r, "sectionID")

	var patch valueobjects.SectionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := commands.UpsertSectionCommand{
		PageID:    pageID,
		SectionID: sectionID,
		Patch:     patch,
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

	section, found := page.Section(sectionID)
	if !found {
		common.RespondError(w, http.StatusInternalServerError, "section missing after upsert")
		return
	}
	common.RespondJSON(w, http.StatusOK, section)
}

// reconcileRequest is the body for POST /pages/{slug}/reconcile
type reconcileRequest struct {
	CreateIfMissing bool `json:"createIfMissing"`
}

// ReconcileSections handles POST /pages/{slug}/reconcile, merging the
// default catalog into the stored document.
func (h *SectionHandler) ReconcileSections(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req reconcileRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	cmd := commands.ReconcileSectionsCommand{
		Slug:            slug,
		CreateIfMissing: req.CreateIfMissing,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetPageBySlugQuery{Slug: slug})
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
