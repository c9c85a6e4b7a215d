package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
)

type carouselStoreStub struct {
	images      []models.CarouselImage
	reorderedTo []string
	renamedID   string
}

func (s *carouselStoreStub) List(ctx context.Context) []models.CarouselImage { return s.images }

func (s *carouselStoreStub) Append(ctx context.Context, img models.CarouselImage) error {
	s.images = append(s.images, img)
	return nil
}

func (s *carouselStoreStub) Remove(ctx context.Context, id string) (models.CarouselImage, error) {
	for i, img := range s.images {
		if img.ID == id {
			s.images = append(s.images[:i], s.images[i+1:]...)
			return img, nil
		}
	}
	return models.CarouselImage{}, appErrors.ErrNotFound
}

func (s *carouselStoreStub) Reorder(ctx context.Context, ids []string) error {
	s.reorderedTo = ids
	return nil
}

func (s *carouselStoreStub) Rename(ctx context.Context, id, title string) error {
	s.renamedID = id
	return nil
}

type mediaWriterStub struct {
	savedPath string
	content   string
}

func (w *mediaWriterStub) SaveStream(filename string, r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	w.savedPath = filename
	w.content = string(raw)
	return filename, nil
}

func newTestCarouselService(store *carouselStoreStub, writer *mediaWriterStub, cleaner *cleanerStub) *CarouselService {
	return NewCarouselService(store, writer, cleaner, nil, nil, CarouselServiceConfig{CarouselPath: "Carousel"})
}

func validCarouselMeta() dto.CarouselUploadRequest {
	return dto.CarouselUploadRequest{Title: "Portada", Description: "Imagen principal"}
}

func TestCarouselServiceUploadStoresFileAndRecord(t *testing.T) {
	store := &carouselStoreStub{}
	writer := &mediaWriterStub{}
	svc := newTestCarouselService(store, writer, nil)

	img, err := svc.Upload(context.Background(), validCarouselMeta(), ImageUpload{
		Filename:    "portada.png",
		Size:        9,
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.ID, "carousel-"), "id %q must carry the carousel- prefix", img.ID)
	assert.True(t, strings.HasPrefix(img.URL, "/Carousel/"), "url %q must live under the carousel path", img.URL)
	assert.True(t, strings.HasSuffix(img.URL, ".png"))
	assert.Equal(t, "Portada", img.Title)
	assert.Equal(t, "png-bytes", writer.content)
	require.Len(t, store.images, 1)
}

func TestCarouselServiceUploadRequiresMetadata(t *testing.T) {
	svc := newTestCarouselService(&carouselStoreStub{}, &mediaWriterStub{}, nil)

	_, err := svc.Upload(context.Background(), dto.CarouselUploadRequest{Title: "Sin descripción"}, ImageUpload{
		Filename:    "a.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("x"),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestCarouselServiceUploadRejectsNonImage(t *testing.T) {
	writer := &mediaWriterStub{}
	svc := newTestCarouselService(&carouselStoreStub{}, writer, nil)

	_, err := svc.Upload(context.Background(), validCarouselMeta(), ImageUpload{
		Filename:    "video.mp4",
		ContentType: "video/mp4",
		Content:     strings.NewReader("x"),
	})
	require.Error(t, err)
	assert.Empty(t, writer.savedPath, "rejected upload must not reach storage")
}

func TestCarouselServiceUploadDefaultsJpgExtension(t *testing.T) {
	svc := newTestCarouselService(&carouselStoreStub{}, &mediaWriterStub{}, nil)

	img, err := svc.Upload(context.Background(), validCarouselMeta(), ImageUpload{
		Filename:    "sinextension",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("x"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(img.URL, ".jpg"))
}

func TestCarouselServiceDeleteEnqueuesFileCleanup(t *testing.T) {
	store := &carouselStoreStub{images: []models.CarouselImage{
		{ID: "carousel-1", URL: "/Carousel/abc.jpg"},
	}}
	cleaner := &cleanerStub{}
	svc := newTestCarouselService(store, &mediaWriterStub{}, cleaner)

	require.NoError(t, svc.Delete(context.Background(), "carousel-1"))
	assert.Empty(t, store.images)
	assert.Equal(t, []string{"/Carousel/abc.jpg"}, cleaner.urls)
}

func TestCarouselServiceReorderRejectsEmptyIDs(t *testing.T) {
	store := &carouselStoreStub{}
	svc := newTestCarouselService(store, &mediaWriterStub{}, nil)

	err := svc.Reorder(context.Background(), []dto.CarouselOrderEntry{{ID: "carousel-1"}, {ID: ""}})
	require.Error(t, err)
	assert.Nil(t, store.reorderedTo)

	require.NoError(t, svc.Reorder(context.Background(), []dto.CarouselOrderEntry{{ID: "b"}, {ID: "a"}}))
	assert.Equal(t, []string{"b", "a"}, store.reorderedTo)
}

func TestCarouselServiceRenameRequiresFields(t *testing.T) {
	store := &carouselStoreStub{}
	svc := newTestCarouselService(store, &mediaWriterStub{}, nil)

	err := svc.Rename(context.Background(), dto.CarouselRenameRequest{ID: "carousel-1"})
	require.Error(t, err)
	assert.Empty(t, store.renamedID)

	require.NoError(t, svc.Rename(context.Background(), dto.CarouselRenameRequest{ID: "carousel-1", Title: "Nueva"}))
	assert.Equal(t, "carousel-1", store.renamedID)
}
