package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

type goalInput struct {
	Target float64 `json:"target" binding:"required"`
	Unit   string  `json:"unit"`
}

// PUT /goals/:category
func (g *GoalController) Upsert(c *gin.Context) {
	uid := c.GetUint("userID")
	category := c.Param("category")

	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := g.Goals.Upsert(c.Request.Context(), uid, category, input.Target, input.Unit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GET /goals
func (g *GoalController) Progress(c *gin.Context) {
	uid := c.GetUint("userID")

	progress, err := g.Goals.Progress(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
