package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/bimcat/catalog-api/internal/models"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/export"
)

// ExportFile is a rendered export ready to stream to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders catalog and inbox snapshots as CSV or PDF for the
// dashboard download buttons.
type ExportService struct {
	cursos   cursoStore
	mensajes mensajeStore
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewExportService wires the export service.
func NewExportService(cursos cursoStore, mensajes mensajeStore, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		cursos:   cursos,
		mensajes: mensajes,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
		now:      time.Now,
	}
}

// Cursos exports the course catalog in the requested format ("csv" or "pdf").
func (s *ExportService) Cursos(ctx context.Context, format string) (ExportFile, error) {
	return s.render(format, "cursos", cursosDataset(s.cursos.List(ctx)))
}

// Mensajes exports the contact inbox in the requested format.
func (s *ExportService) Mensajes(ctx context.Context, format string) (ExportFile, error) {
	return s.render(format, "mensajes", mensajesDataset(s.mensajes.List(ctx)))
}

func (s *ExportService) render(format, name string, data export.Dataset) (ExportFile, error) {
	stamp := s.now().Format("2006-01-02")
	switch format {
	case "csv":
		content, err := s.csv.Render(data)
		if err != nil {
			return ExportFile{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el CSV")
		}
		return ExportFile{
			Filename:    fmt.Sprintf("%s-%s.csv", name, stamp),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	case "pdf":
		content, err := s.pdf.Render(data, name)
		if err != nil {
			return ExportFile{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el PDF")
		}
		return ExportFile{
			Filename:    fmt.Sprintf("%s-%s.pdf", name, stamp),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		return ExportFile{}, appErrors.Clone(appErrors.ErrValidation, "formato no soportado, use csv o pdf")
	}
}

func cursosDataset(cursos []models.Curso) export.Dataset {
	headers := []string{"ID", "Título", "Slug", "Categoría", "Nivel", "Docente", "Precio Profesional", "Precio Estudiante", "Inicio", "Fin", "Visible"}
	rows := make([]map[string]string, 0, len(cursos))
	for _, c := range cursos {
		rows = append(rows, map[string]string{
			"ID":                 c.ID,
			"Título":             c.Title,
			"Slug":               c.Slug,
			"Categoría":          c.Categoria,
			"Nivel":              c.Level,
			"Docente":            c.Teacher,
			"Precio Profesional": c.PriceProfesional,
			"Precio Estudiante":  c.PriceEstudiante,
			"Inicio":             c.StartDate,
			"Fin":                c.EndDate,
			"Visible":            strconv.FormatBool(c.IsVisible()),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func mensajesDataset(mensajes []models.Mensaje) export.Dataset {
	headers := []string{"Fecha", "Nombre", "Email", "Teléfono", "Asunto", "Mensaje", "Leído"}
	rows := make([]map[string]string, 0, len(mensajes))
	for _, m := range mensajes {
		rows = append(rows, map[string]string{
			"Fecha":    m.Fecha.Format(time.RFC3339),
			"Nombre":   m.Nombre,
			"Email":    m.Email,
			"Teléfono": m.Telefono,
			"Asunto":   m.Asunto,
			"Mensaje":  m.Mensaje,
			"Leído":    strconv.FormatBool(m.Leido),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
