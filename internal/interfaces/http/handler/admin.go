package handler

import (
	"github.com/gin-gonic/gin"

	auditapp "github.com/paperstock/backend/internal/application/audit"
	identityapp "github.com/paperstock/backend/internal/application/identity"
	"github.com/paperstock/backend/internal/interfaces/http/middleware"
)

// AdminHandler handles the admin-only surface: the user table, the audit
// trail, and the failed-transaction log.
type AdminHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	recorder    *auditapp.Recorder
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(authService *identityapp.AuthService, recorder *auditapp.Recorder) *AdminHandler {
	return &AdminHandler{authService: authService, recorder: recorder}
}

// ListUsers returns the static user table
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, users)
}

// AuditLogs returns the audit trail, most recent first
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	logs, err := h.recorder.Trail(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, logs)
}

// FailedTransactions returns the failed-transaction log, most recent first
func (h *AdminHandler) FailedTransactions(c *gin.Context) {
	failures, err := h.recorder.Failures(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, failures)
}

// ClearFailedTransactions empties the failed-transaction log
func (h *AdminHandler) ClearFailedTransactions(c *gin.Context) {
	if err := h.recorder.ClearFailures(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers the admin-gated routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/audit-logs", h.AuditLogs)
		admin.GET("/failed-transactions", h.FailedTransactions)
		admin.DELETE("/failed-transactions", h.ClearFailedTransactions)
	}
}
