package store

import "github.com/bimcat/catalog-api/internal/models"

func testCurso(id, slug, title string) models.Curso {
	return models.Curso{
		ID:    id,
		Slug:  slug,
		Title: title,
	}
}
