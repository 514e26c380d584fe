package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/paperstock/backend/internal/application/partner"
)

// DepartmentHandler handles department master endpoints
type DepartmentHandler struct {
	BaseHandler
	departmentService *partnerapp.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService *partnerapp.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create adds a new department
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req partnerapp.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	department, err := h.departmentService.Create(c.Request.Context(), getActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, department)
}

// Update replaces the descriptive fields of a department
func (h *DepartmentHandler) Update(c *gin.Context) {
	var req partnerapp.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	department, err := h.departmentService.Update(c.Request.Context(), getActor(c), c.Param("departmentCode"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, department)
}

// Get returns a single department
func (h *DepartmentHandler) Get(c *gin.Context) {
	department, err := h.departmentService.Get(c.Request.Context(), c.Param("departmentCode"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, department)
}

// List returns all departments
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, departments)
}

// RegisterRoutes registers department master routes
func (h *DepartmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	departments := rg.Group("/departments")
	{
		departments.GET("", h.List)
		departments.POST("", h.Create)
		departments.GET("/:departmentCode", h.Get)
		departments.PUT("/:departmentCode", h.Update)
	}
}
