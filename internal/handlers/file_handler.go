package handlers

import (
	"mime"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/storage"
)

// FileHandler serves stored upload objects back by their object name,
// the static /uploads path of the original deployment.
type FileHandler struct {
	blobs storage.BlobStore
}

func NewFileHandler(blobs storage.BlobStore) *FileHandler {
	return &FileHandler{blobs: blobs}
}

// Serve handles GET /uploads/:filename.
func (h *FileHandler) Serve(c *fiber.Ctx) error {
	name := c.Params("filename")
	if name == "" {
		return apperr.Respond(c, apperr.Validation("filename is required"))
	}

	object, err := h.blobs.Get(c.Context(), name)
	if err != nil {
		return apperr.Respond(c, apperr.NotFound("File not found"))
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(object)
}
