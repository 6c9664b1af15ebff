package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type StreakController struct {
	Streaks *services.StreakService
}

func NewStreakController(streaks *services.StreakService) *StreakController {
	return &StreakController{Streaks: streaks}
}

// GET /streaks
func (s *StreakController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	streaks, err := s.Streaks.List(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"streaks": streaks})
}
