// internal/domain/upload/service.go
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/google/uuid"
)

// Service handles catalog image uploads. Files land in the configured
// upload directory and are served statically at /uploads.
type Service struct {
	config *config.Config
}

// NewService creates a new upload service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// SaveImage validates and stores an uploaded image, returning the public
// path to store on the alien record.
func (s *Service) SaveImage(header *multipart.FileHeader) (string, error) {
	if header.Size > s.config.Upload.MaxSize {
		return "", apperr.Validation(fmt.Sprintf("Image exceeds the %d byte limit", s.config.Upload.MaxSize))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if !s.isAllowedExtension(ext) {
		return "", apperr.Validation("Unsupported image format: " + ext)
	}

	if err := os.MkdirAll(s.config.Upload.Dir, 0o755); err != nil {
		return "", apperr.Internal(err)
	}

	filename := uuid.New().String() + "." + ext
	dstPath := filepath.Join(s.config.Upload.Dir, filename)

	src, err := header.Open()
	if err != nil {
		return "", apperr.Internal(err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", apperr.Internal(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", apperr.Internal(err)
	}

	return "/uploads/" + filename, nil
}

func (s *Service) isAllowedExtension(ext string) bool {
	for _, allowed := range s.config.Upload.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
