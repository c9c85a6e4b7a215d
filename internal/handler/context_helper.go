package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/middleware"
	"github.com/bimcat/catalog-api/internal/models"
)

func sessionFromContext(c *gin.Context) *models.SessionClaims {
	value, exists := c.Get(middleware.ContextSessionKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
