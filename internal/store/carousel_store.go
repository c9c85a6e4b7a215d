package store

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
)

// ErrImageNotFound is returned for mutations referencing an unknown image id.
var ErrImageNotFound = appErrors.Clone(appErrors.ErrNotFound, "Imagen no encontrada")

// CarouselStore is the flat-file carousel collection. The stored array order
// is the display order.
type CarouselStore struct {
	file   *File[[]models.CarouselImage]
	logger *zap.Logger
}

// NewCarouselStore opens the carousel images file inside the data directory.
func NewCarouselStore(dataDir, filename string, logger *zap.Logger) *CarouselStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := filepath.Join(dataDir, filename)
	empty := func() []models.CarouselImage { return []models.CarouselImage{} }
	return &CarouselStore{file: NewFile(path, empty, nil, logger), logger: logger}
}

// SetObserver attaches store operation timing instrumentation.
func (s *CarouselStore) SetObserver(obs OpObserver) {
	s.file.SetObserver(obs)
}

// List returns the images in display order.
func (s *CarouselStore) List(ctx context.Context) []models.CarouselImage {
	return s.file.Read()
}

// Append adds a new image at the end of the display order.
func (s *CarouselStore) Append(ctx context.Context, img models.CarouselImage) error {
	_, err := s.file.Update(func(images []models.CarouselImage) ([]models.CarouselImage, error) {
		return append(images, img), nil
	})
	return err
}

// Remove deletes the record and returns it so the caller can unlink the file.
func (s *CarouselStore) Remove(ctx context.Context, id string) (models.CarouselImage, error) {
	var removed models.CarouselImage
	_, err := s.file.Update(func(images []models.CarouselImage) ([]models.CarouselImage, error) {
		for i, img := range images {
			if img.ID == id {
				removed = img
				return append(images[:i], images[i+1:]...), nil
			}
		}
		return images, ErrImageNotFound
	})
	if err != nil {
		return models.CarouselImage{}, err
	}
	return removed, nil
}

// Reorder rebuilds the stored array following the given id order. Ids that no
// longer exist are dropped from the persisted order with a warning; their
// records are gone afterwards, matching the historical reorder contract.
func (s *CarouselStore) Reorder(ctx context.Context, ids []string) error {
	_, err := s.file.Update(func(images []models.CarouselImage) ([]models.CarouselImage, error) {
		byID := make(map[string]models.CarouselImage, len(images))
		for _, img := range images {
			byID[img.ID] = img
		}
		reordered := make([]models.CarouselImage, 0, len(ids))
		for _, id := range ids {
			img, ok := byID[id]
			if !ok {
				s.logger.Warn("image id not found during reordering", zap.String("id", id))
				continue
			}
			reordered = append(reordered, img)
		}
		return reordered, nil
	})
	return err
}

// Rename updates the title of one image in place.
func (s *CarouselStore) Rename(ctx context.Context, id, title string) error {
	_, err := s.file.Update(func(images []models.CarouselImage) ([]models.CarouselImage, error) {
		for i := range images {
			if images[i].ID == id {
				images[i].Title = title
				return images, nil
			}
		}
		return images, ErrImageNotFound
	})
	return err
}
