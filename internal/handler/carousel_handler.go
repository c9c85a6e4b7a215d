package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/service"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/response"
)

// CarouselHandler exposes the home-page carousel endpoints.
type CarouselHandler struct {
	service *service.CarouselService
}

// NewCarouselHandler constructs a carousel handler.
func NewCarouselHandler(svc *service.CarouselService) *CarouselHandler {
	return &CarouselHandler{service: svc}
}

// List godoc
// @Summary List carousel images in display order
// @Tags Carousel
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /carousel [get]
func (h *CarouselHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()))
}

// Upload godoc
// @Summary Upload carousel image
// @Tags Carousel
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param title formData string true "Image title"
// @Param description formData string true "Image description"
// @Success 201 {object} response.Envelope
// @Router /carousel [post]
func (h *CarouselHandler) Upload(c *gin.Context) {
	meta := dto.CarouselUploadRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Faltan campos requeridos"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "no se pudo leer el archivo"))
		return
	}
	defer file.Close() //nolint:errcheck

	img, err := h.service.Upload(c.Request.Context(), meta, service.ImageUpload{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, img)
}

// Delete godoc
// @Summary Delete carousel image
// @Tags Carousel
// @Produce json
// @Param id query string true "Image ID"
// @Success 200 {object} response.Envelope
// @Router /carousel [delete]
func (h *CarouselHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "se requiere el id de la imagen"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// Reorder godoc
// @Summary Reorder carousel images
// @Tags Carousel
// @Accept json
// @Produce json
// @Param payload body []dto.CarouselOrderEntry true "Images in the new display order"
// @Success 200 {object} response.Envelope
// @Router /carousel [put]
func (h *CarouselHandler) Reorder(c *gin.Context) {
	var entries []dto.CarouselOrderEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	if err := h.service.Reorder(c.Request.Context(), entries); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()))
}

// Rename godoc
// @Summary Rename carousel image
// @Tags Carousel
// @Accept json
// @Produce json
// @Param payload body dto.CarouselRenameRequest true "Image id and new title"
// @Success 200 {object} response.Envelope
// @Router /carousel [patch]
func (h *CarouselHandler) Rename(c *gin.Context) {
	var req dto.CarouselRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	if err := h.service.Rename(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
