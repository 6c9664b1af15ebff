package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SleepController struct {
	Sleep *services.SleepService
}

func NewSleepController(sleep *services.SleepService) *SleepController {
	return &SleepController{Sleep: sleep}
}

func (s *SleepController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.SleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := s.Sleep.Add(c.Request.Context(), uid, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *SleepController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	sessions, err := s.Sleep.List(c.Request.Context(), uid, queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *SleepController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.SleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := s.Sleep.Update(c.Request.Context(), uid, id, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *SleepController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.Sleep.Delete(c.Request.Context(), uid, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
