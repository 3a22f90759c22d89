package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/common"
)

// maxUploadBytes caps a single asset upload
const maxUploadBytes = 10 << 20 // 10 MiB

// UploadHandler accepts asset uploads and returns the stored URL. The
// client writes that URL into a section via the section endpoints.
type UploadHandler struct {
	blobStore ports.BlobStore
	logger    *zap.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(blobStore ports.BlobStore, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		blobStore: blobStore,
		logger:    logger,
	}
}

// Upload handles POST /uploads with a multipart "file" field
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid multipart body or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	// Uploads are keyed by date and a fresh id so re-uploads of the
	// same filename never clobber each other.
	ext := path.Ext(header.Filename)
	storagePath := fmt.Sprintf("%s/%s%s", time.Now().UTC().Format("2006/01/02"), uuid.New().String(), ext)

	url, err := h.blobStore.Upload(r.Context(), storagePath, data, contentType)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{
		"url":  url,
		"path": storagePath,
	})
}
