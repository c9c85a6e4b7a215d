package handler

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/service"
)

// WatchHandler streams catalog changes over Server-Sent Events. Each event
// carries the full course list, so a client that misses an event is fully
// repaired by the next one.
type WatchHandler struct {
	service *service.CursoService
}

// NewWatchHandler constructs a catalog watch handler.
func NewWatchHandler(svc *service.CursoService) *WatchHandler {
	return &WatchHandler{service: svc}
}

// Watch godoc
// @Summary Stream catalog changes
// @Tags Cursos
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream of catalog snapshots"
// @Router /cursos/watch [get]
func (h *WatchHandler) Watch(c *gin.Context) {
	updates, unsubscribe := h.service.Subscribe(c.Request.Context())
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-store")
	c.Header("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case cursos, ok := <-updates:
			if !ok {
				return false
			}
			payload, err := json.Marshal(dto.CursoListResponse{Cursos: cursos})
			if err != nil {
				return false
			}
			c.SSEvent("catalog", string(payload))
			return true
		}
	})
}
