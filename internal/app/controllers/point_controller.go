package controllers

import (
	"net/http"
	"time"

	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/services"
	"github.com/emre/classpulse/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// PointController handles the engagement point ledger
type PointController struct {
	pointService services.PointService
	logger       zerolog.Logger
}

// NewPointController creates a new PointController
func NewPointController(pointService services.PointService, logger zerolog.Logger) *PointController {
	return &PointController{
		pointService: pointService,
		logger:       logger,
	}
}

// Award creates a ledger entry for the caller
func (c *PointController) Award(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	var req dto.AwardPointRequest
	if !bindJSON(ctx, &req) {
		return
	}

	response, err := c.pointService.Award(ctx.Request.Context(), student, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// History lists the caller's entries newest first, with optional section and
// date-range query filters.
func (c *PointController) History(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	filters := dto.HistoryFilters{Section: ctx.Query("section")}
	if from := ctx.Query("from"); from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("from must be a YYYY-MM-DD date"))
			return
		}
		filters.From = parsed
	}
	if to := ctx.Query("to"); to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("to must be a YYYY-MM-DD date"))
			return
		}
		filters.To = parsed
	}

	points, err := c.pointService.History(ctx.Request.Context(), student.ID, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, points)
}

// Update edits an entry's points and reason
func (c *PointController) Update(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePointRequest
	if !bindStrictJSON(ctx, &req) {
		return
	}

	point, err := c.pointService.Edit(ctx.Request.Context(), student, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, point)
}

// Delete removes an entry and returns the deleted record
func (c *PointController) Delete(ctx *gin.Context) {
	student := middleware.CurrentStudent(ctx)

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	point, err := c.pointService.Remove(ctx.Request.Context(), student, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, point)
}
