package dto

import "github.com/bimcat/catalog-api/internal/models"

// CreateCursoRequest carries a new course. The identifier and slug are
// assigned server-side; any values sent by the client are ignored.
type CreateCursoRequest struct {
	models.Curso
}

// CursoListResponse wraps the catalog the way the data file does, so admin
// clients keep receiving {"cursos": [...]}.
type CursoListResponse struct {
	Cursos []models.Curso `json:"cursos"`
}
