package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
)

type carouselStore interface {
	List(ctx context.Context) []models.CarouselImage
	Append(ctx context.Context, img models.CarouselImage) error
	Remove(ctx context.Context, id string) (models.CarouselImage, error)
	Reorder(ctx context.Context, ids []string) error
	Rename(ctx context.Context, id, title string) error
}

type mediaWriter interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// ImageUpload carries an incoming multipart file.
type ImageUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// CarouselServiceConfig fixes the public path layout and upload limits.
type CarouselServiceConfig struct {
	CarouselPath string
	MaxFileSize  int64
}

// CarouselService manages the home-page carousel: records in the flat file,
// files under the public carousel directory.
type CarouselService struct {
	store     carouselStore
	media     mediaWriter
	cleaner   mediaCleaner
	validator *validator.Validate
	logger    *zap.Logger
	cfg       CarouselServiceConfig
}

// NewCarouselService wires the carousel service. cleaner may be nil.
func NewCarouselService(store carouselStore, media mediaWriter, cleaner mediaCleaner, validate *validator.Validate, logger *zap.Logger, cfg CarouselServiceConfig) *CarouselService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CarouselPath == "" {
		cfg.CarouselPath = "Carousel"
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 15 * 1024 * 1024
	}
	return &CarouselService{store: store, media: media, cleaner: cleaner, validator: validate, logger: logger, cfg: cfg}
}

// List returns the images in display order.
func (s *CarouselService) List(ctx context.Context) []models.CarouselImage {
	return s.store.List(ctx)
}

// Upload stores the file under a randomized name and appends the record at
// the end of the display order.
func (s *CarouselService) Upload(ctx context.Context, meta dto.CarouselUploadRequest, upload ImageUpload) (models.CarouselImage, error) {
	if err := s.validator.Struct(meta); err != nil {
		return models.CarouselImage{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Faltan campos requeridos")
	}
	if upload.Content == nil {
		return models.CarouselImage{}, appErrors.Clone(appErrors.ErrValidation, "Faltan campos requeridos")
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return models.CarouselImage{}, appErrors.Clone(appErrors.ErrValidation, "El archivo debe ser una imagen")
	}
	if upload.Size > s.cfg.MaxFileSize {
		return models.CarouselImage{}, appErrors.Clone(appErrors.ErrPayloadTooLarge, "El archivo no debe superar los 15MB")
	}

	ext := filepath.Ext(upload.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	storedName := uuid.NewString() + ext
	if _, err := s.media.SaveStream(filepath.Join(s.cfg.CarouselPath, storedName), upload.Content); err != nil {
		return models.CarouselImage{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error al subir la imagen")
	}

	img := models.CarouselImage{
		ID:          fmt.Sprintf("carousel-%d", time.Now().UnixMilli()),
		URL:         "/" + s.cfg.CarouselPath + "/" + storedName,
		Title:       meta.Title,
		Description: meta.Description,
	}
	if err := s.store.Append(ctx, img); err != nil {
		return models.CarouselImage{}, err
	}
	return img, nil
}

// Delete removes the record and schedules best-effort removal of the file.
func (s *CarouselService) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		return err
	}
	if s.cleaner != nil && removed.URL != "" {
		s.cleaner.EnqueueDeleteURL(removed.URL)
	}
	return nil
}

// Reorder persists a new display order. Unknown ids are dropped by the store.
func (s *CarouselService) Reorder(ctx context.Context, entries []dto.CarouselOrderEntry) error {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.ID == "" {
			return appErrors.Clone(appErrors.ErrValidation, "cada entrada del orden necesita un id")
		}
		ids = append(ids, entry.ID)
	}
	return s.store.Reorder(ctx, ids)
}

// Rename updates one image title in place.
func (s *CarouselService) Rename(ctx context.Context, req dto.CarouselRenameRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "se requieren id y title")
	}
	return s.store.Rename(ctx, req.ID, req.Title)
}
