package controllers

import (
	"net/http"
	"strconv"

	"github.com/JavaChrist/in-shape/services"

	"github.com/gin-gonic/gin"
)

type CoachController struct {
	Svc       *services.CoachService
	Exchanges *services.ExchangeService
}

func NewCoachController(svc *services.CoachService, ex *services.ExchangeService) *CoachController {
	return &CoachController{Svc: svc, Exchanges: ex}
}

// JoinCode returns the code a coach shares with new students.
func (h *CoachController) JoinCode(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := services.FindUserByID(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coach_code": user.CoachCode})
}

func (h *CoachController) Students(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	students, err := h.Svc.Students(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(students))
	for _, s := range students {
		out = append(out, gin.H{
			"id":        s.ID,
			"name":      s.Name,
			"email":     s.Email,
			"weight_kg": s.WeightKg,
		})
	}
	c.JSON(http.StatusOK, out)
}

func studentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return 0, false
	}
	return uint(id), true
}

func (h *CoachController) StudentOverview(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	studentID, ok := studentIDParam(c)
	if !ok {
		return
	}

	week, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week"})
		return
	}

	overview, err := h.Svc.StudentOverview(uid, studentID, week)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// AnnotateExchange sets the one-shot coach comment on a student note.
func (h *CoachController) AnnotateExchange(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	studentID, ok := studentIDParam(c)
	if !ok {
		return
	}
	exchangeID, err := strconv.ParseUint(c.Param("exchangeId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exchange id"})
		return
	}

	var input struct {
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exchange, err := h.Exchanges.Annotate(uid, studentID, uint(exchangeID), input.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exchange)
}
