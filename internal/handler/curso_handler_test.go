package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimcat/catalog-api/internal/models"
	"github.com/bimcat/catalog-api/internal/service"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/response"
)

// cursoStoreMock is safe for concurrent use: the watch stream reads it from
// the handler goroutine while tests mutate it.
type cursoStoreMock struct {
	mu     sync.Mutex
	cursos []models.Curso
}

func (m *cursoStoreMock) List(ctx context.Context) []models.Curso {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Curso(nil), m.cursos...)
}

func (m *cursoStoreMock) Get(ctx context.Context, id string) (*models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cursos {
		if c.ID == id {
			curso := c
			return &curso, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "Curso no encontrado")
}

func (m *cursoStoreMock) GetBySlug(ctx context.Context, slug string) (*models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cursos {
		if c.Slug == slug {
			curso := c
			return &curso, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "Curso no encontrado")
}

func (m *cursoStoreMock) Create(ctx context.Context, curso models.Curso) (models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	curso.ID = "1"
	m.cursos = append(m.cursos, curso)
	return curso, nil
}

func (m *cursoStoreMock) Merge(ctx context.Context, id string, patch []byte) (models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cursos {
		if m.cursos[i].ID == id {
			var partial models.Curso
			if err := json.Unmarshal(patch, &partial); err != nil {
				return models.Curso{}, appErrors.Clone(appErrors.ErrValidation, "datos de curso inválidos")
			}
			if partial.Title != "" {
				m.cursos[i].Title = partial.Title
			}
			return m.cursos[i], nil
		}
	}
	return models.Curso{}, appErrors.Clone(appErrors.ErrNotFound, "Curso no encontrado")
}

func (m *cursoStoreMock) Delete(ctx context.Context, id string) (models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.cursos {
		if c.ID == id {
			m.cursos = append(m.cursos[:i], m.cursos[i+1:]...)
			return c, nil
		}
	}
	return models.Curso{}, appErrors.Clone(appErrors.ErrNotFound, "Curso no encontrado")
}

func (m *cursoStoreMock) ToggleVisibility(ctx context.Context, id string) (models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cursos {
		if m.cursos[i].ID == id {
			visible := !m.cursos[i].IsVisible()
			m.cursos[i].Visible = &visible
			return m.cursos[i], nil
		}
	}
	return models.Curso{}, appErrors.Clone(appErrors.ErrNotFound, "Curso no encontrado")
}

func newCursoTestHandler(store *cursoStoreMock) *CursoHandler {
	return NewCursoHandler(service.NewCursoService(store, nil, nil, nil, nil, nil))
}

func TestCursoHandlerListWrapsCursosKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCursoTestHandler(&cursoStoreMock{cursos: []models.Curso{{ID: "1", Title: "Revit"}}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/cursos", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Cursos []models.Curso `json:"cursos"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Cursos, 1)
	assert.Equal(t, "Revit", envelope.Data.Cursos[0].Title)
}

func TestCursoHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCursoTestHandler(&cursoStoreMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/cursos/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "Curso no encontrado", envelope.Error.Message)
}

func TestCursoHandlerCreateInvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCursoTestHandler(&cursoStoreMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/cursos", bytes.NewReader([]byte(`{broken`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCursoHandlerCreateAssignsSlug(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCursoTestHandler(&cursoStoreMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(map[string]string{"title": "Introducción a Revit"})
	req := httptest.NewRequest(http.MethodPost, "/cursos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data models.Curso `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "introduccion-a-revit", envelope.Data.Slug)
}

func TestCursoHandlerUpdateEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newCursoTestHandler(&cursoStoreMock{cursos: []models.Curso{{ID: "1", Title: "Revit"}}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/cursos/1", bytes.NewReader(nil))
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Update(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCursoHandlerUpdateMergesPatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &cursoStoreMock{cursos: []models.Curso{{ID: "1", Title: "Revit", Teacher: "Arq. Gómez"}}}
	handler := newCursoTestHandler(store)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPut, "/cursos/1", bytes.NewReader([]byte(`{"title": "Revit Avanzado"}`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Update(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Revit Avanzado", store.cursos[0].Title)
	assert.Equal(t, "Arq. Gómez", store.cursos[0].Teacher)
}

func TestCursoHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &cursoStoreMock{cursos: []models.Curso{{ID: "1", Title: "Revit"}}}
	handler := newCursoTestHandler(store)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/cursos/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.cursos)
}
