package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursoIsVisibleDefaultsToTrue(t *testing.T) {
	assert.True(t, Curso{}.IsVisible())

	hidden := false
	assert.False(t, Curso{Visible: &hidden}.IsVisible())

	shown := true
	assert.True(t, Curso{Visible: &shown}.IsVisible())
}

func TestCursoOfferActiveCoversWholeEndDay(t *testing.T) {
	curso := Curso{OfferEndDate: "2025-06-15"}

	assert.True(t, curso.OfferActive(time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)))
	assert.False(t, curso.OfferActive(time.Date(2025, 6, 16, 0, 0, 1, 0, time.UTC)))
}

func TestCursoOfferActiveWithoutEndDate(t *testing.T) {
	assert.False(t, Curso{}.OfferActive(time.Now()))
	assert.False(t, Curso{OfferEndDate: "no-es-fecha"}.OfferActive(time.Now()))
}

func TestCursoJSONKeysMatchDataFile(t *testing.T) {
	visible := false
	curso := Curso{
		ID:               "1",
		Slug:             "introduccion-a-revit",
		Title:            "Introducción a Revit",
		PriceProfesional: "120",
		PriceEstudiante:  "90",
		Temas:            []Tema{{Titulo: "Modelado", Contenidos: []string{"Muros"}}},
		Visible:          &visible,
	}

	raw, err := json.Marshal(curso)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	for _, key := range []string{"id", "slug", "title", "priceProfesional", "priceEstudiante", "temas", "visible"} {
		assert.Contains(t, keys, key)
	}
	assert.NotContains(t, keys, "images", "empty optional fields stay out of the file")
}
