package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	identityapp "github.com/paperstock/backend/internal/application/identity"
	"github.com/paperstock/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an identifier and returns a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Me resolves the current session back to its user
func (h *AuthHandler) Me(c *gin.Context) {
	authHeader := c.GetHeader(middleware.AuthHeaderKey)
	token := strings.TrimPrefix(authHeader, middleware.BearerPrefix)
	if token == "" {
		h.Unauthorized(c, "Missing token")
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), token)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", h.Me)
	}
}
