package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/service"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/response"
)

// CursoHandler exposes the course catalog endpoints.
type CursoHandler struct {
	service *service.CursoService
}

// NewCursoHandler constructs a course handler.
func NewCursoHandler(svc *service.CursoService) *CursoHandler {
	return &CursoHandler{service: svc}
}

// List godoc
// @Summary List courses
// @Tags Cursos
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /cursos [get]
func (h *CursoHandler) List(c *gin.Context) {
	cursos := h.service.List(c.Request.Context())
	response.JSON(c, http.StatusOK, dto.CursoListResponse{Cursos: cursos})
}

// Get godoc
// @Summary Get course by id
// @Tags Cursos
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /cursos/{id} [get]
func (h *CursoHandler) Get(c *gin.Context) {
	curso, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, curso)
}

// GetBySlug godoc
// @Summary Get course by slug
// @Tags Cursos
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} response.Envelope
// @Router /cursos/slug/{slug} [get]
func (h *CursoHandler) GetBySlug(c *gin.Context) {
	curso, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, curso)
}

// Create godoc
// @Summary Create course
// @Tags Cursos
// @Accept json
// @Produce json
// @Param payload body dto.CreateCursoRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /cursos [post]
func (h *CursoHandler) Create(c *gin.Context) {
	var req dto.CreateCursoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	curso, err := h.service.Create(c.Request.Context(), req.Curso)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, curso)
}

// Update godoc
// @Summary Partially update course
// @Tags Cursos
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body object true "Fields to merge"
// @Success 200 {object} response.Envelope
// @Router /cursos/{id} [put]
func (h *CursoHandler) Update(c *gin.Context) {
	// The payload is kept raw: only the keys the client sent are merged onto
	// the stored record, exactly like the historical dashboard contract.
	patch, err := c.GetRawData()
	if err != nil || len(patch) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "payload inválido"))
		return
	}
	curso, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, curso)
}

// Delete godoc
// @Summary Delete course
// @Tags Cursos
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /cursos/{id} [delete]
func (h *CursoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// ToggleVisibility godoc
// @Summary Toggle course visibility
// @Tags Cursos
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /cursos/{id}/visibility [patch]
func (h *CursoHandler) ToggleVisibility(c *gin.Context) {
	curso, err := h.service.ToggleVisibility(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, curso)
}
