package handlers

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"jobconnect/internal/apperrors"
	"jobconnect/internal/config"

	"github.com/google/uuid"
)

// saveDocument stores a CV or verification document and returns the stored
// filename. Extension and size limits come from the upload config.
func (h *BaseHandler) saveDocument(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (string, error) {
	cfg := config.GetConfig()

	if fileHeader.Size > cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range cfg.Upload.AllowedCVExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", apperrors.ErrInvalidFileType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	filename := prefix + "-" + uuid.NewString() + ext
	if err := h.storage.Save(ctx, filename, file, contentTypeForExt(ext)); err != nil {
		return "", apperrors.InternalError(err)
	}
	return filename, nil
}

// saveImage downscales and stores a blog image, returning the stored filename.
func (h *BaseHandler) saveImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	cfg := config.GetConfig()

	if fileHeader.Size > cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	processed, format, err := h.images.Downscale(file)
	if err != nil {
		return "", apperrors.ErrInvalidFileType
	}

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}

	filename := "blog-" + uuid.NewString() + ext
	if err := h.storage.Save(ctx, filename, processed, contentTypeForExt(ext)); err != nil {
		return "", apperrors.InternalError(err)
	}
	return filename, nil
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
