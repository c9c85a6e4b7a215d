package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/service"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/response"
)

// MediaHandler exposes image upload, deletion and temporary previews.
type MediaHandler struct {
	service *service.MediaService
}

// NewMediaHandler constructs a media handler.
func NewMediaHandler(svc *service.MediaService) *MediaHandler {
	return &MediaHandler{service: svc}
}

// Upload godoc
// @Summary Upload course image
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 201 {object} response.Envelope
// @Router /upload [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "No se proporcionó ningún archivo"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "no se pudo leer el archivo"))
		return
	}
	defer file.Close() //nolint:errcheck

	url, err := h.service.Upload(service.ImageUpload{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.UploadResponse{URL: url})
}

// Delete godoc
// @Summary Delete uploaded image by URL
// @Tags Media
// @Accept json
// @Produce json
// @Param payload body dto.DeleteImageRequest true "Public image URL"
// @Success 200 {object} response.Envelope
// @Router /delete-image [post]
func (h *MediaHandler) Delete(c *gin.Context) {
	var req dto.DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "se requiere imageUrl"))
		return
	}
	deleted, err := h.service.DeleteByURL(req.ImageURL)
	if err != nil {
		response.Error(c, err)
		return
	}
	message := "Imagen eliminada"
	if !deleted {
		message = "La imagen no existe, nada que eliminar"
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": message})
}

// TmpImage godoc
// @Summary Serve temporary preview image
// @Tags Media
// @Produce octet-stream
// @Param filename path string true "Bare file name"
// @Success 200 {file} binary
// @Router /tmp-image/{filename} [get]
func (h *MediaHandler) TmpImage(c *gin.Context) {
	file, contentType, err := h.service.TmpImage(c.Param("filename"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, file)
}
