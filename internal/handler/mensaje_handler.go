package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/service"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/response"
)

// MensajeHandler exposes the contact form and the dashboard inbox.
type MensajeHandler struct {
	service *service.MensajeService
}

// NewMensajeHandler constructs a contact message handler.
func NewMensajeHandler(svc *service.MensajeService) *MensajeHandler {
	return &MensajeHandler{service: svc}
}

// List godoc
// @Summary List contact messages
// @Tags Mensajes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /mensajes [get]
func (h *MensajeHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()))
}

// Create godoc
// @Summary Submit contact message
// @Tags Mensajes
// @Accept json
// @Produce json
// @Param payload body dto.CreateMensajeRequest true "Contact form payload"
// @Success 201 {object} response.Envelope
// @Router /mensajes [post]
func (h *MensajeHandler) Create(c *gin.Context) {
	var req dto.CreateMensajeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	mensaje, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, mensaje)
}

// MarkRead godoc
// @Summary Mark contact message as read
// @Tags Mensajes
// @Accept json
// @Produce json
// @Param payload body dto.MarkMensajeReadRequest true "Message index"
// @Success 200 {object} response.Envelope
// @Router /mensajes/read [patch]
func (h *MensajeHandler) MarkRead(c *gin.Context) {
	var req dto.MarkMensajeReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Índice inválido"))
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}
