package controllers

import (
	"net/http"
	"strconv"

	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/services"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	Svc *services.HabitService
}

func NewHabitController(svc *services.HabitService) *HabitController {
	return &HabitController{Svc: svc}
}

// Catalogue serves the fixed habit list; it never changes at runtime.
func (h *HabitController) Catalogue(c *gin.Context) {
	c.JSON(http.StatusOK, models.HabitCatalogue)
}

func (h *HabitController) WeekCompletions(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}

	flags, err := h.Svc.WeekCompletions(uid, week)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := h.Svc.WeekScore(uid, week)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week":        week,
		"completions": flags,
		"score":       score,
	})
}

func (h *HabitController) SetCompletion(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week number"})
		return
	}

	var input struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.SetCompletion(uid, c.Param("id"), week, input.Completed); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
