package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage abstracts where uploaded files (CVs, blog images, verification
// documents) live. Paths are relative keys like "cv/<uuid>.pdf".
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL the stored file is served from.
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary URL for files not publicly readable.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type Config struct {
	Type      string // local, s3, cloudflare_r2
	BasePath  string // local only
	BaseURL   string // public URL base
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // R2 or custom S3 endpoint
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
