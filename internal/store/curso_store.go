package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
)

// ErrCursoNotFound is returned for lookups and mutations on unknown ids.
var ErrCursoNotFound = appErrors.Clone(appErrors.ErrNotFound, "Curso no encontrado")

// CursoStore is the flat-file catalog collection. All mutations are
// serialized through the underlying file lock.
type CursoStore struct {
	file *File[models.CursoCollection]
}

// NewCursoStore opens (lazily) the cursos file inside the data directory.
func NewCursoStore(dataDir, filename string, logger *zap.Logger) *CursoStore {
	path := filepath.Join(dataDir, filename)
	empty := func() models.CursoCollection { return models.CursoCollection{Cursos: []models.Curso{}} }
	return &CursoStore{file: NewFile(path, empty, migrateCursos, logger)}
}

// SetObserver attaches store operation timing instrumentation.
func (s *CursoStore) SetObserver(obs OpObserver) {
	s.file.SetObserver(obs)
}

// List returns the full collection snapshot.
func (s *CursoStore) List(ctx context.Context) []models.Curso {
	return s.file.Read().Cursos
}

// Get finds one course by id.
func (s *CursoStore) Get(ctx context.Context, id string) (*models.Curso, error) {
	for _, c := range s.file.Read().Cursos {
		if c.ID == id {
			curso := c
			return &curso, nil
		}
	}
	return nil, ErrCursoNotFound
}

// GetBySlug finds one course by slug.
func (s *CursoStore) GetBySlug(ctx context.Context, slug string) (*models.Curso, error) {
	for _, c := range s.file.Read().Cursos {
		if c.Slug == slug {
			curso := c
			return &curso, nil
		}
	}
	return nil, ErrCursoNotFound
}

// Create appends the course, assigning the next numeric id and making the
// pre-computed slug unique within the collection. An empty collection yields
// id "1".
func (s *CursoStore) Create(ctx context.Context, curso models.Curso) (models.Curso, error) {
	var created models.Curso
	_, err := s.file.Update(func(doc models.CursoCollection) (models.CursoCollection, error) {
		curso.ID = nextID(doc.Cursos)
		curso.Slug = uniqueSlug(doc.Cursos, curso.Slug, "")
		doc.Cursos = append(doc.Cursos, curso)
		created = curso
		return doc, nil
	})
	if err != nil {
		return models.Curso{}, err
	}
	return created, nil
}

// Merge shallow-merges a partial JSON payload onto the stored record, the
// same way the dashboard has always patched courses. The id field cannot be
// overwritten; a slug sent in the patch is re-uniquified against the rest of
// the collection.
func (s *CursoStore) Merge(ctx context.Context, id string, patch []byte) (models.Curso, error) {
	var merged models.Curso
	_, err := s.file.Update(func(doc models.CursoCollection) (models.CursoCollection, error) {
		idx := indexByID(doc.Cursos, id)
		if idx < 0 {
			return doc, ErrCursoNotFound
		}
		result, err := mergeCurso(doc.Cursos[idx], patch)
		if err != nil {
			return doc, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de curso inválidos")
		}
		result.ID = id
		if result.Slug != doc.Cursos[idx].Slug {
			result.Slug = uniqueSlug(doc.Cursos, result.Slug, id)
		}
		doc.Cursos[idx] = result
		merged = result
		return doc, nil
	})
	if err != nil {
		return models.Curso{}, err
	}
	return merged, nil
}

// Delete removes exactly one record and returns it so callers can clean up
// associated media.
func (s *CursoStore) Delete(ctx context.Context, id string) (models.Curso, error) {
	var removed models.Curso
	_, err := s.file.Update(func(doc models.CursoCollection) (models.CursoCollection, error) {
		idx := indexByID(doc.Cursos, id)
		if idx < 0 {
			return doc, ErrCursoNotFound
		}
		removed = doc.Cursos[idx]
		doc.Cursos = append(doc.Cursos[:idx], doc.Cursos[idx+1:]...)
		return doc, nil
	})
	if err != nil {
		return models.Curso{}, err
	}
	return removed, nil
}

// ToggleVisibility flips the visible flag, treating an absent flag as true.
func (s *CursoStore) ToggleVisibility(ctx context.Context, id string) (models.Curso, error) {
	var toggled models.Curso
	_, err := s.file.Update(func(doc models.CursoCollection) (models.CursoCollection, error) {
		idx := indexByID(doc.Cursos, id)
		if idx < 0 {
			return doc, ErrCursoNotFound
		}
		visible := !doc.Cursos[idx].IsVisible()
		doc.Cursos[idx].Visible = &visible
		toggled = doc.Cursos[idx]
		return doc, nil
	})
	if err != nil {
		return models.Curso{}, err
	}
	return toggled, nil
}

// Normalize rewrites the file in the canonical shape: the load path applies
// the legacy migrations, the identity update persists the result.
func (s *CursoStore) Normalize(ctx context.Context) error {
	_, err := s.file.Update(func(doc models.CursoCollection) (models.CursoCollection, error) {
		return doc, nil
	})
	return err
}

func indexByID(cursos []models.Curso, id string) int {
	for i, c := range cursos {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// nextID assigns max(numeric ids)+1 as a string. The first course of an
// empty collection gets "1"; non-numeric ids are skipped.
func nextID(cursos []models.Curso) string {
	max := 0
	for _, c := range cursos {
		if n, err := strconv.Atoi(c.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// uniqueSlug suffixes the base slug with -2, -3, ... until it collides with
// no other record. selfID excludes the record being updated.
func uniqueSlug(cursos []models.Curso, base, selfID string) string {
	if base == "" {
		base = "curso"
	}
	taken := func(candidate string) bool {
		for _, c := range cursos {
			if c.Slug == candidate && c.ID != selfID {
				return true
			}
		}
		return false
	}
	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken(candidate) {
			return candidate
		}
	}
}

// mergeCurso overlays a partial JSON object onto the stored record.
func mergeCurso(existing models.Curso, patch []byte) (models.Curso, error) {
	base, err := json.Marshal(existing)
	if err != nil {
		return models.Curso{}, err
	}
	var baseMap map[string]json.RawMessage
	if err := json.Unmarshal(base, &baseMap); err != nil {
		return models.Curso{}, err
	}
	var patchMap map[string]json.RawMessage
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return models.Curso{}, err
	}
	for k, v := range patchMap {
		baseMap[k] = v
	}
	combined, err := json.Marshal(baseMap)
	if err != nil {
		return models.Curso{}, err
	}
	var merged models.Curso
	if err := json.Unmarshal(combined, &merged); err != nil {
		return models.Curso{}, err
	}
	return merged, nil
}
