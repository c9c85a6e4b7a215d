package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/slug"
)

type cursoStore interface {
	List(ctx context.Context) []models.Curso
	Get(ctx context.Context, id string) (*models.Curso, error)
	GetBySlug(ctx context.Context, slug string) (*models.Curso, error)
	Create(ctx context.Context, curso models.Curso) (models.Curso, error)
	Merge(ctx context.Context, id string, patch []byte) (models.Curso, error)
	Delete(ctx context.Context, id string) (models.Curso, error)
	ToggleVisibility(ctx context.Context, id string) (models.Curso, error)
}

// CatalogCache is the optional snapshot cache in front of the course store.
type CatalogCache interface {
	Get(ctx context.Context) ([]models.Curso, bool)
	Set(ctx context.Context, cursos []models.Curso)
	Invalidate(ctx context.Context)
}

type mediaCleaner interface {
	EnqueueDeleteURL(publicURL string)
}

type cacheObserver interface {
	RecordCacheOperation(hit bool, duration time.Duration)
}

// CursoService owns the course catalog: CRUD over the flat-file store, the
// optional snapshot cache, the subscription hub, and best-effort cleanup of
// orphaned course images.
type CursoService struct {
	store   cursoStore
	cache   CatalogCache
	hub     *CatalogHub
	cleaner mediaCleaner
	metrics cacheObserver
	logger  *zap.Logger
}

// NewCursoService wires the catalog service. cache, cleaner and metrics may
// be nil.
func NewCursoService(store cursoStore, cache CatalogCache, hub *CatalogHub, cleaner mediaCleaner, metrics cacheObserver, logger *zap.Logger) *CursoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if hub == nil {
		hub = NewCatalogHub()
	}
	return &CursoService{store: store, cache: cache, hub: hub, cleaner: cleaner, metrics: metrics, logger: logger}
}

// List returns the full catalog, served from the snapshot cache when warm.
func (s *CursoService) List(ctx context.Context) []models.Curso {
	if s.cache != nil {
		start := time.Now()
		if cursos, hit := s.cache.Get(ctx); hit {
			s.observeCache(true, time.Since(start))
			return cursos
		}
		s.observeCache(false, time.Since(start))
	}
	cursos := s.store.List(ctx)
	if s.cache != nil {
		s.cache.Set(ctx, cursos)
	}
	return cursos
}

// Get returns one course by id.
func (s *CursoService) Get(ctx context.Context, id string) (*models.Curso, error) {
	return s.store.Get(ctx, id)
}

// GetBySlug returns one course by its URL slug.
func (s *CursoService) GetBySlug(ctx context.Context, slugValue string) (*models.Curso, error) {
	return s.store.GetBySlug(ctx, slugValue)
}

// Create assigns the slug from the title and appends the course. The store
// assigns the id and guarantees slug uniqueness.
func (s *CursoService) Create(ctx context.Context, curso models.Curso) (models.Curso, error) {
	if strings.TrimSpace(curso.Title) == "" {
		return models.Curso{}, appErrors.Clone(appErrors.ErrValidation, "el título es obligatorio")
	}
	curso.ID = ""
	curso.Slug = slug.Generate(curso.Title)

	created, err := s.store.Create(ctx, curso)
	if err != nil {
		return models.Curso{}, err
	}
	s.afterMutation(ctx)
	return created, nil
}

// Update shallow-merges a partial payload onto the stored course.
func (s *CursoService) Update(ctx context.Context, id string, patch json.RawMessage) (models.Curso, error) {
	updated, err := s.store.Merge(ctx, id, patch)
	if err != nil {
		return models.Curso{}, err
	}
	s.afterMutation(ctx)
	return updated, nil
}

// Delete removes the course and schedules best-effort removal of its primary
// image. A failed image deletion never blocks the record deletion.
func (s *CursoService) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if s.cleaner != nil && removed.Img != "" {
		s.cleaner.EnqueueDeleteURL(removed.Img)
	}
	s.afterMutation(ctx)
	return nil
}

// ToggleVisibility flips the visible flag.
func (s *CursoService) ToggleVisibility(ctx context.Context, id string) (models.Curso, error) {
	toggled, err := s.store.ToggleVisibility(ctx, id)
	if err != nil {
		return models.Curso{}, err
	}
	s.afterMutation(ctx)
	return toggled, nil
}

// Subscribe registers a catalog listener and immediately delivers the current
// snapshot. The returned function unsubscribes and closes the channel.
func (s *CursoService) Subscribe(ctx context.Context) (<-chan []models.Curso, func()) {
	ch, unsubscribe := s.hub.Subscribe()
	s.hub.Deliver(ch, s.List(ctx))
	return ch, unsubscribe
}

func (s *CursoService) afterMutation(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.hub.Broadcast(s.store.List(ctx))
}

func (s *CursoService) observeCache(hit bool, d time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordCacheOperation(hit, d)
	}
}
