package controllers

import (
	"net/http"
	"strconv"

	"github.com/JavaChrist/in-shape/services"

	"github.com/gin-gonic/gin"
)

type WeeklyLogController struct {
	Svc *services.WeeklyLogService
}

func NewWeeklyLogController(svc *services.WeeklyLogService) *WeeklyLogController {
	return &WeeklyLogController{Svc: svc}
}

func weekParam(c *gin.Context) (int, bool) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week number"})
		return 0, false
	}
	return week, true
}

func (h *WeeklyLogController) GetWeek(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}

	sheet, err := h.Svc.GetWeek(uid, week)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *WeeklyLogController) UpdateDay(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}
	weekday, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weekday"})
		return
	}

	var input services.DayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sheet, err := h.Svc.UpdateDay(uid, week, weekday, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// GetWeekSummary serves the fill-rate percentages the dashboard progress bars
// are built from.
func (h *WeeklyLogController) GetWeekSummary(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}

	sheet, err := h.Svc.GetWeek(uid, week)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week":       week,
		"fill_rates": services.WeeklySummary(sheet),
	})
}
