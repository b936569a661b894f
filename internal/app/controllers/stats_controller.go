package controllers

import (
	"net/http"

	"github.com/emre/classpulse/internal/app/services"
	"github.com/emre/classpulse/internal/middleware"
	"github.com/gin-gonic/gin"
)

// StatsController serves derived views over the ledger
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// Leaderboard returns every student ranked by total points
func (c *StatsController) Leaderboard(ctx *gin.Context) {
	entries, err := c.statsService.Leaderboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// Sections returns total points per class section
func (c *StatsController) Sections(ctx *gin.Context) {
	totals, err := c.statsService.Sections(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, totals)
}

// TopContributors returns the five highest scorers
func (c *StatsController) TopContributors(ctx *gin.Context) {
	contributors, err := c.statsService.TopContributors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, contributors)
}

// Statistics returns time-bucketed totals and averages
func (c *StatsController) Statistics(ctx *gin.Context) {
	stats, err := c.statsService.Statistics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
