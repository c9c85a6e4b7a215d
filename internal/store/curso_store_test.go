package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimcat/catalog-api/internal/service"
)

func newTestCursoStore(t *testing.T) (*CursoStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewCursoStore(dir, "cursos.json", nil), filepath.Join(dir, "cursos.json")
}

func seedCursosFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCursoStoreListMissingFileServesEmpty(t *testing.T) {
	store, _ := newTestCursoStore(t)
	assert.Empty(t, store.List(context.Background()))
}

func TestCursoStoreListCorruptFileServesEmpty(t *testing.T) {
	store, path := newTestCursoStore(t)
	seedCursosFile(t, path, `{"cursos": [truncated`)
	assert.Empty(t, store.List(context.Background()))
}

func TestCursoStoreCreateAssignsFirstID(t *testing.T) {
	store, _ := newTestCursoStore(t)

	created, err := store.Create(context.Background(), testCurso("", "revit-basico", "Revit Básico"))
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)
}

func TestCursoStoreCreateAssignsMaxNumericPlusOne(t *testing.T) {
	store, path := newTestCursoStore(t)
	seedCursosFile(t, path, `{"cursos": [
		{"id": "3", "slug": "a", "title": "A"},
		{"id": "legacy-x", "slug": "b", "title": "B"},
		{"id": "7", "slug": "c", "title": "C"}
	]}`)

	created, err := store.Create(context.Background(), testCurso("", "d", "D"))
	require.NoError(t, err)
	assert.Equal(t, "8", created.ID)
}

func TestCursoStoreCreateUniquifiesSlug(t *testing.T) {
	store, _ := newTestCursoStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, testCurso("", "revit", "Revit"))
	require.NoError(t, err)
	second, err := store.Create(ctx, testCurso("", "revit", "Revit"))
	require.NoError(t, err)
	third, err := store.Create(ctx, testCurso("", "revit", "Revit"))
	require.NoError(t, err)

	assert.Equal(t, "revit", first.Slug)
	assert.Equal(t, "revit-2", second.Slug)
	assert.Equal(t, "revit-3", third.Slug)
}

func TestCursoStoreCreatePersistsCanonicalShape(t *testing.T) {
	store, path := newTestCursoStore(t)

	_, err := store.Create(context.Background(), testCurso("", "revit", "Revit"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "cursos")
}

func TestCursoStoreGetBySlug(t *testing.T) {
	store, _ := newTestCursoStore(t)
	ctx := context.Background()
	created, err := store.Create(ctx, testCurso("", "introduccion-a-revit", "Introducción a Revit"))
	require.NoError(t, err)

	found, err := store.GetBySlug(ctx, "introduccion-a-revit")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = store.GetBySlug(ctx, "no-existe")
	assert.ErrorIs(t, err, ErrCursoNotFound)
}

func TestCursoStoreMergeKeepsUnpatchedFields(t *testing.T) {
	store, _ := newTestCursoStore(t)
	ctx := context.Background()
	curso := testCurso("", "revit", "Revit")
	curso.Teacher = "Arq. Gómez"
	curso.PriceProfesional = "120"
	created, err := store.Create(ctx, curso)
	require.NoError(t, err)

	merged, err := store.Merge(ctx, created.ID, []byte(`{"title": "Revit Avanzado", "priceProfesional": "150"}`))
	require.NoError(t, err)

	assert.Equal(t, "Revit Avanzado", merged.Title)
	assert.Equal(t, "150", merged.PriceProfesional)
	assert.Equal(t, "Arq. Gómez", merged.Teacher)
	assert.Equal(t, created.ID, merged.ID)
}

func TestCursoStoreMergeCannotChangeID(t *testing.T) {
	store, _ := newTestCursoStore(t)
	ctx := context.Background()
	created, err := store.Create(ctx, testCurso("", "revit", "Revit"))
	require.NoError(t, err)

	merged, err := store.Merge(ctx, created.ID, []byte(`{"id": "999"}`))
	require.NoError(t, err)
	assert.Equal(t, created.ID, merged.ID)
}

func TestCursoStoreMergeReuniquifiesChangedSlug(t *testing.T) {
	store, _ := newTestCursoStore(t)
	ctx := context.Background()
	_, err := store.Create(ctx, testCurso("", "autocad", "AutoCAD"))
	require.NoError(t, err)
	second, err := store.Create(ctx, testCurso("", "revit", "Revit"))
	require.NoError(t, err)

	merged, err := store.Merge(ctx, second.ID, []byte(`{"slug": "autocad"}`))
	require.NoError(t, err)
	assert.Equal(t, "autocad-2", merged.Slug)
}

func TestCursoStoreMergeUnknownID(t *testing.T) {
	store, _ := newTestCursoStore(t)
	_, err := store.Merge(context.Background(), "42", []byte(`{"title": "X"}`))
	assert.ErrorIs(t, err, ErrCursoNotFound)
}

func TestCursoStoreMergeRejectsMalformedPatch(t *testing.T) {
	store, _ := newTestCursoStore(t)
	ctx := context.Background()
	created, err := store.Create(ctx, testCurso("", "revit", "Revit"))
	require.NoError(t, err)

	_, err = store.Merge(ctx, created.ID, []byte(`not json`))
	assert.Error(t, err)
}

func TestCursoStoreDeleteRemovesExactlyOne(t *testing.T) {
	store, _ := newTestCursoStore(t)
	ctx := context.Background()
	first, err := store.Create(ctx, testCurso("", "a", "A"))
	require.NoError(t, err)
	second, err := store.Create(ctx, testCurso("", "b", "B"))
	require.NoError(t, err)

	removed, err := store.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, removed.ID)

	remaining := store.List(ctx)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)

	_, err = store.Delete(ctx, first.ID)
	assert.ErrorIs(t, err, ErrCursoNotFound)
}

func TestCursoStoreToggleVisibilityTwiceRestores(t *testing.T) {
	store, _ := newTestCursoStore(t)
	ctx := context.Background()
	created, err := store.Create(ctx, testCurso("", "revit", "Revit"))
	require.NoError(t, err)
	assert.True(t, created.IsVisible())

	hidden, err := store.ToggleVisibility(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, hidden.IsVisible())

	visible, err := store.ToggleVisibility(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, visible.IsVisible())
}

func TestCursoStoreOperationsShowUpInMetricsSnapshot(t *testing.T) {
	store, _ := newTestCursoStore(t)
	metrics := service.NewMetricsService(nil)
	store.SetObserver(metrics)
	ctx := context.Background()

	created, err := store.Create(ctx, testCurso("", "revit", "Revit"))
	require.NoError(t, err)
	store.List(ctx)
	_, err = store.Delete(ctx, created.ID)
	require.NoError(t, err)

	snapshot := metrics.Snapshot()
	assert.EqualValues(t, 3, snapshot.StoreOpCount)
	assert.GreaterOrEqual(t, snapshot.AverageStoreOpDurationMs, 0.0)
}

func TestCursoStoreMigratesLegacyShape(t *testing.T) {
	store, _ := newTestCursoStore(t)
	seedCursosFile(t, store.file.path, `{"courses": [
		{"id": "1", "slug": "revit", "title": "Revit", "price": "100", "benefits": ["Certificado", "Material incluido"]}
	]}`)

	cursos := store.List(context.Background())
	require.Len(t, cursos, 1)
	assert.Equal(t, "100", cursos[0].PriceProfesional)
	assert.Equal(t, "100", cursos[0].PriceEstudiante)
	require.Len(t, cursos[0].Temas, 1)
	assert.Equal(t, "Beneficios", cursos[0].Temas[0].Titulo)
	assert.Equal(t, []string{"Certificado", "Material incluido"}, cursos[0].Temas[0].Contenidos)
}

func TestCursoStoreNormalizePersistsCanonicalKeys(t *testing.T) {
	store, path := newTestCursoStore(t)
	seedCursosFile(t, path, `{"courses": [{"id": "1", "slug": "revit", "title": "Revit", "price": "100"}]}`)

	require.NoError(t, store.Normalize(context.Background()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "cursos")
	assert.NotContains(t, doc, "courses")
	assert.NotContains(t, string(raw), `"price"`)
}

func TestCursoStoreMigrationKeepsExplicitPrices(t *testing.T) {
	store, _ := newTestCursoStore(t)
	seedCursosFile(t, store.file.path, `{"cursos": [
		{"id": "1", "slug": "revit", "title": "Revit", "price": "100", "priceProfesional": "150"}
	]}`)

	cursos := store.List(context.Background())
	require.Len(t, cursos, 1)
	assert.Equal(t, "150", cursos[0].PriceProfesional)
	assert.Equal(t, "100", cursos[0].PriceEstudiante)
}
