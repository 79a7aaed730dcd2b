package controllers

import (
	"net/http"

	"github.com/JavaChrist/in-shape/services"

	"github.com/gin-gonic/gin"
)

type ExchangeController struct {
	Svc *services.ExchangeService
}

func NewExchangeController(svc *services.ExchangeService) *ExchangeController {
	return &ExchangeController{Svc: svc}
}

func (h *ExchangeController) List(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	exchanges, err := h.Svc.List(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exchanges)
}

func (h *ExchangeController) Add(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Note string `json:"note" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exchange, err := h.Svc.Add(uid, input.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, exchange)
}
