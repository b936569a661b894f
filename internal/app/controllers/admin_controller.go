package controllers

import (
	"net/http"

	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/services"
	"github.com/emre/classpulse/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminController handles student moderation
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// ListStudents returns every registered student
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.adminService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// DeleteStudent removes a student and their dependent records
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.adminService.DeleteStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// ChangeRole sets a student's role
func (c *AdminController) ChangeRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.adminService.ChangeRole(ctx.Request.Context(), id, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// ChangeStatus sets a student's account status
func (c *AdminController) ChangeStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.adminService.ChangeStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent applies the admin-mutable profile fields
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !bindStrictJSON(ctx, &req) {
		return
	}

	student, err := c.adminService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}
