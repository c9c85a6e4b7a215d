package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/dto"
	"github.com/bimcat/catalog-api/internal/service"
	appErrors "github.com/bimcat/catalog-api/pkg/errors"
	"github.com/bimcat/catalog-api/pkg/response"
)

// AuthCookieConfig shapes the session cookie set at login.
type AuthCookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler exposes the admin login and session endpoints.
type AuthHandler struct {
	service *service.AuthService
	cookie  AuthCookieConfig
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(svc *service.AuthService, cookie AuthCookieConfig) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "adminAuth"
	}
	return &AuthHandler{service: svc, cookie: cookie}
}

// Login godoc
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Admin password"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "se requiere la contraseña"))
		return
	}
	token, expiresAt, err := h.service.Login(req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)

	response.JSON(c, http.StatusOK, dto.LoginResponse{Success: true, Token: token, ExpiresAt: expiresAt})
}

// Logout godoc
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.JSON(c, http.StatusOK, gin.H{"success": true})
}

// Session godoc
// @Summary Current admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "No autenticado"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"role":      claims.Role,
		"expiresAt": claims.ExpiresAt.Time,
	})
}
