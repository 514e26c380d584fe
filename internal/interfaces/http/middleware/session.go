package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/paperstock/backend/internal/infrastructure/auth"
	"github.com/paperstock/backend/internal/interfaces/http/dto"
)

// Session context keys
const (
	SessionClaimsKey     = "session_claims"
	SessionUserIDKey     = "session_user_id"
	SessionUserNameKey   = "session_user_name"
	SessionRoleKey       = "session_role"
	SessionIdentifierKey = "session_identifier"
	AuthHeaderKey        = "Authorization"
	BearerPrefix         = "Bearer "
)

// SessionConfig holds configuration for the session middleware
type SessionConfig struct {
	TokenService *auth.TokenService
	// SkipPaths are exact paths that don't require a session
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require a session
	SkipPathPrefixes []string
}

// DefaultSessionConfig returns the default session middleware configuration
func DefaultSessionConfig(tokenService *auth.TokenService) SessionConfig {
	return SessionConfig{
		TokenService: tokenService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/login",
		},
	}
}

// SessionAuth creates session authentication middleware with default config
func SessionAuth(tokenService *auth.TokenService) gin.HandlerFunc {
	return SessionAuthWithConfig(DefaultSessionConfig(tokenService))
}

// SessionAuthWithConfig creates session authentication middleware. Validated
// claims land in the gin context for handlers and the role gate.
func SessionAuthWithConfig(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, "Missing token")
			return
		}

		claims, err := cfg.TokenService.Validate(tokenString)
		if err != nil {
			abortUnauthorized(c, "Session is invalid or expired")
			return
		}

		c.Set(SessionClaimsKey, claims)
		c.Set(SessionUserIDKey, claims.UserID)
		c.Set(SessionUserNameKey, claims.Name)
		c.Set(SessionRoleKey, claims.Role)
		c.Set(SessionIdentifierKey, claims.Identifier)
		c.Next()
	}
}

// RequireAdmin gates a route group to admin sessions
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSessionRole(c) != "admin" {
			requestID := c.GetString("request_id")
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "Admin access required", requestID))
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, message, requestID))
}

// GetSessionUserID returns the authenticated user id, empty when anonymous
func GetSessionUserID(c *gin.Context) string {
	return c.GetString(SessionUserIDKey)
}

// GetSessionUserName returns the authenticated user's display name
func GetSessionUserName(c *gin.Context) string {
	return c.GetString(SessionUserNameKey)
}

// GetSessionRole returns the authenticated user's role, empty when anonymous
func GetSessionRole(c *gin.Context) string {
	return c.GetString(SessionRoleKey)
}
