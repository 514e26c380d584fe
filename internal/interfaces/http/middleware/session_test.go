package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperstock/backend/internal/infrastructure/auth"
	"github.com/paperstock/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService(config.SessionConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 15 * time.Minute,
		Issuer:     "test-issuer",
	})
}

func newSessionRouter(tokenService *auth.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(SessionAuth(tokenService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetSessionUserID(c),
			"role":    GetSessionRole(c),
		})
	})
	return router
}

func TestSessionAuth_ValidToken(t *testing.T) {
	tokenService := newTestTokenService()
	session, err := tokenService.Issue("admin-001", "Admin User", "admin", "ADM001")
	require.NoError(t, err)

	router := gin.New()
	router.Use(SessionAuth(tokenService))
	router.GET("/test", func(c *gin.Context) {
		assert.Equal(t, "admin-001", GetSessionUserID(c))
		assert.Equal(t, "Admin User", GetSessionUserName(c))
		assert.Equal(t, "admin", GetSessionRole(c))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	router := newSessionRouter(newTestTokenService())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_InvalidHeaderFormat(t *testing.T) {
	tokenService := newTestTokenService()
	session, err := tokenService.Issue("user-001", "John Doe", "user", "USR001")
	require.NoError(t, err)

	router := newSessionRouter(tokenService)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", session.Token) // no Bearer prefix
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_GarbageToken(t *testing.T) {
	router := newSessionRouter(newTestTokenService())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_SkipPaths(t *testing.T) {
	tokenService := newTestTokenService()

	router := gin.New()
	router.Use(SessionAuthWithConfig(SessionConfig{
		TokenService: tokenService,
		SkipPaths:    []string{"/health"},
	}))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_SkipPathPrefixes(t *testing.T) {
	router := gin.New()
	router.Use(SessionAuthWithConfig(SessionConfig{
		TokenService:     newTestTokenService(),
		SkipPathPrefixes: []string{"/public"},
	}))
	router.GET("/public/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/public/info", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	tokenService := newTestTokenService()
	session, err := tokenService.Issue("admin-001", "Admin User", "admin", "ADM001")
	require.NoError(t, err)

	router := gin.New()
	router.Use(SessionAuth(tokenService))
	admin := router.Group("/admin", RequireAdmin())
	admin.GET("/audit-logs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/audit-logs", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_RejectsUser(t *testing.T) {
	tokenService := newTestTokenService()
	session, err := tokenService.Issue("user-001", "John Doe", "user", "USR001")
	require.NoError(t, err)

	router := gin.New()
	router.Use(SessionAuth(tokenService))
	admin := router.Group("/admin", RequireAdmin())
	admin.GET("/audit-logs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/audit-logs", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
