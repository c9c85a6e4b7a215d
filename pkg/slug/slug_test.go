package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Introducción a Revit", "introduccion-a-revit"},
		{"Curso BIM Avanzado", "curso-bim-avanzado"},
		{"Diseño   y  Construcción", "diseno-y-construccion"},
		{"¿Qué es BIM?", "que-es-bim"},
		{"---AutoCAD 2024---", "autocad-2024"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Generate(tc.title), "title %q", tc.title)
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Espanol basico", RemoveDiacritics("Español básico"))
	assert.Equal(t, "ACENTUACION", RemoveDiacritics("ACENTUACIÓN"))
}
