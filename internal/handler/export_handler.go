package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/service"
	"github.com/bimcat/catalog-api/pkg/response"
)

// ExportHandler exposes CSV and PDF downloads for the dashboard.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Cursos godoc
// @Summary Export course catalog
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /exports/cursos [get]
func (h *ExportHandler) Cursos(c *gin.Context) {
	file, err := h.service.Cursos(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

// Mensajes godoc
// @Summary Export contact inbox
// @Tags Exports
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /exports/mensajes [get]
func (h *ExportHandler) Mensajes(c *gin.Context) {
	file, err := h.service.Mensajes(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveExport(c, file)
}

func serveExport(c *gin.Context, file service.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
