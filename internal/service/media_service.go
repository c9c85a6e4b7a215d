package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/storage"
)

// MediaServiceConfig fixes the uploads layout.
type MediaServiceConfig struct {
	UploadsPath string
	TmpDir      string
	MaxFileSize int64
}

// MediaService handles course image uploads, deletion by public URL, and
// serving of temporary editor previews from outside the public tree.
type MediaService struct {
	store  *storage.LocalStorage
	logger *zap.Logger
	cfg    MediaServiceConfig
	now    func() time.Time
}

// NewMediaService wires the media service over local storage.
func NewMediaService(store *storage.LocalStorage, logger *zap.Logger, cfg MediaServiceConfig) *MediaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.UploadsPath == "" {
		cfg.UploadsPath = "uploads"
	}
	if cfg.TmpDir == "" {
		cfg.TmpDir = filepath.Join(os.TempDir(), "uploads")
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 15 * 1024 * 1024
	}
	return &MediaService{store: store, logger: logger, cfg: cfg, now: time.Now}
}

// Upload stores an image under the public uploads directory and returns its
// public URL. The stored name keeps a timestamp prefix so the directory
// lists in upload order, with a random suffix so two uploads in the same
// millisecond can never overwrite each other.
func (s *MediaService) Upload(upload ImageUpload) (string, error) {
	if upload.Content == nil {
		return "", appErrors.Clone(appErrors.ErrValidation, "No se proporcionó ningún archivo")
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", appErrors.Clone(appErrors.ErrValidation, "El archivo debe ser una imagen")
	}
	if upload.Size > s.cfg.MaxFileSize {
		return "", appErrors.Clone(appErrors.ErrPayloadTooLarge, "El archivo no debe superar los 15MB")
	}

	ext := strings.TrimPrefix(filepath.Ext(upload.Filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	storedName := fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), uuid.NewString(), ext)
	if _, err := s.store.SaveStream(filepath.Join(s.cfg.UploadsPath, storedName), upload.Content); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error al subir la imagen")
	}
	return "/" + s.cfg.UploadsPath + "/" + storedName, nil
}

// DeleteByURL removes an uploaded file by its public URL. Only URLs under the
// uploads path are accepted and only the base name is honoured, so a crafted
// URL can never reach outside the uploads directory. A missing file reports
// success: the end state is the same.
func (s *MediaService) DeleteByURL(publicURL string) (bool, error) {
	prefix := "/" + s.cfg.UploadsPath + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return false, appErrors.Clone(appErrors.ErrValidation, "URL de imagen inválida")
	}
	name := strings.TrimPrefix(publicURL, prefix)
	if !storage.SafeFilename(name) {
		return false, appErrors.Clone(appErrors.ErrValidation, "URL de imagen inválida")
	}
	relPath := filepath.Join(s.cfg.UploadsPath, name)
	if !s.store.Exists(relPath) {
		s.logger.Info("image already absent, skipping", zap.String("url", publicURL))
		return false, nil
	}
	if err := s.store.Delete(relPath); err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error al eliminar la imagen")
	}
	return true, nil
}

// TmpImage opens a temporary preview image by bare filename and reports its
// content type. Callers stream the file and must close it.
func (s *MediaService) TmpImage(name string) (*os.File, string, error) {
	if !storage.SafeFilename(name) {
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "nombre de archivo inválido")
	}
	file, err := os.Open(filepath.Join(s.cfg.TmpDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", appErrors.Clone(appErrors.ErrNotFound, "Imagen no encontrada")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error al leer la imagen")
	}
	return file, contentTypeByExt(name), nil
}

func contentTypeByExt(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	case "svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
