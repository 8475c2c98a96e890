package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"jobconnect/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	*BaseHandler
}

func NewFileHandler(base *BaseHandler) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/uploads/:filename", h.ServeFile)
	r.HEAD("/uploads/:filename", h.CheckFileExists)
}

// ServeFile streams a stored upload. Filenames are opaque uuid-based keys,
// so no access check beyond path sanitation is needed.
func (h *FileHandler) ServeFile(c *gin.Context) {
	filename, ok := cleanFilename(c.Param("filename"))
	if !ok {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid filename"))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), filename)
	if err != nil {
		apperrors.HandleError(c, apperrors.NotFound("File"))
		return
	}
	defer reader.Close()

	c.Header("Content-Type", contentTypeForExt(strings.ToLower(filepath.Ext(filename))))
	c.Header("Cache-Control", "public, max-age=31536000")

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func (h *FileHandler) CheckFileExists(c *gin.Context) {
	filename, ok := cleanFilename(c.Param("filename"))
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	exists, err := h.storage.Exists(c.Request.Context(), filename)
	if err != nil || !exists {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

// cleanFilename rejects anything that could escape the storage base path.
func cleanFilename(name string) (string, bool) {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return "", false
	}
	return name, true
}
