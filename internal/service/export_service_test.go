package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimcat/catalog-api/internal/models"
)

func newTestExportService() *ExportService {
	cursos := &cursoStoreStub{cursos: []models.Curso{
		{ID: "1", Title: "Introducción a Revit", Slug: "introduccion-a-revit", Teacher: "Arq. Gómez", PriceProfesional: "120"},
	}}
	mensajes := &mensajeStoreStub{mensajes: []models.Mensaje{
		{Nombre: "Ana", Email: "ana@example.com", Asunto: "Consulta", Mensaje: "Hola", Fecha: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)},
	}}
	return NewExportService(cursos, mensajes, nil)
}

func TestExportServiceCursosCSV(t *testing.T) {
	svc := newTestExportService()

	file, err := svc.Cursos(context.Background(), "csv")
	require.NoError(t, err)

	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))
	body := string(file.Content)
	assert.Contains(t, body, "Introducción a Revit")
	assert.Contains(t, body, "Arq. Gómez")
}

func TestExportServiceMensajesPDF(t *testing.T) {
	svc := newTestExportService()

	file, err := svc.Mensajes(context.Background(), "pdf")
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestExportServiceUnknownFormat(t *testing.T) {
	svc := newTestExportService()

	_, err := svc.Cursos(context.Background(), "xlsx")
	assert.Error(t, err)
}
