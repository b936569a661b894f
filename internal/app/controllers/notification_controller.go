package controllers

import (
	"net/http"

	"github.com/emre/classpulse/internal/app/services"
	"github.com/emre/classpulse/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NotificationController handles the per-student notification log
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// List returns the caller's notifications newest first
func (c *NotificationController) List(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	notifications, err := c.notificationService.List(ctx.Request.Context(), student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

// MarkRead flags one of the caller's notifications as read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	notification, err := c.notificationService.MarkRead(ctx.Request.Context(), id, student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notification)
}
