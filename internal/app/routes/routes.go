// Package routes wires controllers to the HTTP router.
package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/emre/classpulse/internal/app/controllers"
	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/metrics"
	"github.com/emre/classpulse/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	pointController *controllers.PointController,
	statsController *controllers.StatsController,
	adminController *controllers.AdminController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
	pool *pgxpool.Pool,
) {
	router.Use(middleware.Metrics())

	router.GET("/healthz", healthHandler(pool))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/oauth", authController.OAuth)
	}

	// Everything below requires a valid token and a live student record
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authSelf := authenticated.Group("/auth")
	{
		authSelf.GET("/me", authController.Me)
		authSelf.GET("/verify", authController.Verify)
		authSelf.POST("/logout", authController.Logout)
		authSelf.PATCH("/me", authController.UpdateProfile)
		authSelf.PATCH("/update-password", authController.UpdatePassword)
		authSelf.PATCH("/mandatory-update", authController.MandatoryUpdate)
	}

	// Only writing to the ledger requires an active account; suspended and
	// banned students can still read their history and the derived views.
	points := authenticated.Group("/points")
	{
		points.POST("", authMiddleware.ActiveRequired(), pointController.Award)
		points.GET("/history", pointController.History)
		points.PATCH("/:id", authMiddleware.ActiveRequired(), pointController.Update)
		points.DELETE("/:id", pointController.Delete)

		points.GET("/leaderboard", statsController.Leaderboard)
		points.GET("/sections", statsController.Sections)
		points.GET("/top-contributors", statsController.TopContributors)
		points.GET("/statistics", statsController.Statistics)
	}

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", notificationController.List)
		notifications.PATCH("/:id/read", notificationController.MarkRead)
	}

	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.AdminRequired())
	{
		admin.GET("/students", adminController.ListStudents)
		admin.PATCH("/students/:id", adminController.UpdateStudent)
		admin.DELETE("/students/:id", adminController.DeleteStudent)
		admin.PATCH("/students/:id/role", adminController.ChangeRole)
		admin.PATCH("/students/:id/status", adminController.ChangeStatus)
	}
}

// healthHandler pings the database with a short deadline
func healthHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		start := time.Now()
		if err := pool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("database unreachable"))
			return
		}
		metrics.ObserveDBPing(time.Since(start))

		c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
	}
}
